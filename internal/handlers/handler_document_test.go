package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type stubArchiveService struct {
	UploadDocumentFn   func(ctx context.Context, fileName string, mimeType string, content io.Reader) (*portssvc.ArchivedDocument, error)
	DownloadDocumentFn func(ctx context.Context, path string) (*portssvc.DownloadedDocument, error)
	DeleteDocumentFn   func(ctx context.Context, path string) error
}

func (s *stubArchiveService) UploadDocument(ctx context.Context, fileName string, mimeType string, content io.Reader) (*portssvc.ArchivedDocument, error) {
	return s.UploadDocumentFn(ctx, fileName, mimeType, content)
}

func (s *stubArchiveService) DownloadDocument(ctx context.Context, path string) (*portssvc.DownloadedDocument, error) {
	return s.DownloadDocumentFn(ctx, path)
}

func (s *stubArchiveService) DeleteDocument(ctx context.Context, path string) error {
	return s.DeleteDocumentFn(ctx, path)
}

func (s *stubArchiveService) IsAvailable() bool { return true }

func documentTestRouter(svc portssvc.ArchiveSvcFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerDocumentRoutes(r.Group("/api"), svc)
	return r
}

func multipartFileBody(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, fileName))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadDocument_Success(t *testing.T) {
	svc := &stubArchiveService{
		UploadDocumentFn: func(ctx context.Context, fileName string, mimeType string, content io.Reader) (*portssvc.ArchivedDocument, error) {
			assert.Equal(t, "factura.pdf", fileName)
			assert.Equal(t, "application/pdf", mimeType)
			data, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, []byte("%PDF-FAKE"), data)
			return &portssvc.ArchivedDocument{
				Path:     "/okm:root/invoices/factura.pdf",
				FileName: "factura.pdf",
				MimeType: "application/pdf",
				Size:     9,
			}, nil
		},
	}
	r := documentTestRouter(svc)

	body, contentType := multipartFileBody(t, "file", "factura.pdf", "application/pdf", []byte("%PDF-FAKE"))
	req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.DocumentUploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/okm:root/invoices/factura.pdf", resp.Path)
	assert.Equal(t, "factura.pdf", resp.FileName)
	assert.Equal(t, "application/pdf", resp.MimeType)
	assert.Equal(t, int64(9), resp.Size)
}

func TestUploadDocument_MissingFilePart(t *testing.T) {
	r := documentTestRouter(&stubArchiveService{})

	req := httptest.NewRequest(http.MethodPost, "/api/documents", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=empty")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.ErrorCode)
}

func TestDownloadDocument_NotFound(t *testing.T) {
	svc := &stubArchiveService{
		DownloadDocumentFn: func(ctx context.Context, path string) (*portssvc.DownloadedDocument, error) {
			return nil, fmt.Errorf("%w: document missing", apperrors.ErrNotFound)
		},
	}
	r := documentTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/documents/download?path=/okm:root/missing.pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadDocument_StreamsContent(t *testing.T) {
	svc := &stubArchiveService{
		DownloadDocumentFn: func(ctx context.Context, path string) (*portssvc.DownloadedDocument, error) {
			assert.Equal(t, "/okm:root/invoices/factura.pdf", path)
			return &portssvc.DownloadedDocument{
				FileName: "factura.pdf",
				MimeType: "application/pdf",
				Content:  io.NopCloser(bytes.NewReader([]byte("%PDF-FAKE"))),
			}, nil
		},
	}
	r := documentTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/documents/download?path=/okm:root/invoices/factura.pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-FAKE", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="factura.pdf"`)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}
