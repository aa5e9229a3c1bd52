package archive

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/platform/config"
)

func testArchiveConfig(url string) config.ArchiveConfig {
	return config.ArchiveConfig{
		URL:      url,
		Username: "okmAdmin",
		Password: "secret",
		BasePath: "/okm:root/invoices",
	}
}

func TestUploadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/rest/document/createSimple", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "/okm:root/invoices/factura.pdf", r.FormValue("docPath"))

		file, _, err := r.FormFile("content")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "pdf bytes", string(data))

		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`<document><path>/okm:root/invoices/factura.pdf</path><mimeType>application/pdf</mimeType><size>9</size></document>`))
	}))
	defer srv.Close()

	c := NewClient(testArchiveConfig(srv.URL))
	doc, err := c.UploadDocument(context.Background(), "factura.pdf", "application/pdf", strings.NewReader("pdf bytes"))

	require.NoError(t, err)
	assert.Equal(t, "/okm:root/invoices/factura.pdf", doc.Path)
	assert.Equal(t, "factura.pdf", doc.FileName)
	assert.Equal(t, "application/pdf", doc.MimeType)
	assert.Equal(t, int64(9), doc.Size)
}

func TestUploadDocument_SparseXMLFallsBackToRequestValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`<document></document>`))
	}))
	defer srv.Close()

	c := NewClient(testArchiveConfig(srv.URL))
	doc, err := c.UploadDocument(context.Background(), "ticket.jpg", "image/jpeg", strings.NewReader("jpg"))

	require.NoError(t, err)
	assert.Equal(t, "/okm:root/invoices/ticket.jpg", doc.Path)
	assert.Equal(t, "image/jpeg", doc.MimeType)
}

func TestDownloadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Download", r.URL.Path)
		assert.Equal(t, "/okm:root/invoices/factura.pdf", r.URL.Query().Get("path"))
		w.Header().Set("Content-Type", "application/pdf; charset=UTF-8")
		_, _ = w.Write([]byte("pdf bytes"))
	}))
	defer srv.Close()

	c := NewClient(testArchiveConfig(srv.URL))
	doc, err := c.DownloadDocument(context.Background(), "/okm:root/invoices/factura.pdf")

	require.NoError(t, err)
	defer doc.Content.Close()

	assert.Equal(t, "factura.pdf", doc.FileName)
	assert.Equal(t, "application/pdf", doc.MimeType)
	data, err := io.ReadAll(doc.Content)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestDownloadDocument_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(testArchiveConfig(srv.URL))
	_, err := c.DownloadDocument(context.Background(), "/okm:root/invoices/missing.pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteDocument_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(testArchiveConfig(srv.URL))
	err := c.DeleteDocument(context.Background(), "/okm:root/invoices/missing.pdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestParseDocumentXML(t *testing.T) {
	doc := parseDocumentXML(`<okm:document xmlns:okm="http://www.openkm.org"><path>/okm:root/a.pdf</path><mimeType>application/pdf</mimeType><size>1024</size></okm:document>`)
	assert.Equal(t, "/okm:root/a.pdf", doc.Path)
	assert.Equal(t, "application/pdf", doc.MimeType)
	assert.Equal(t, int64(1024), doc.Size)
}
