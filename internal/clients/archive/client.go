package archive

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/middleware"
	"github.com/datum-redsoft/expense-backend/internal/platform/config"
)

// Client stores and retrieves invoice documents in an OpenKM style archive.
// Uploads go through the createSimple multipart endpoint; downloads use the
// path-addressed Download servlet. Responses from createSimple are XML and
// are picked apart with per-tag matching, which survives the attribute noise
// OpenKM adds between versions.
type Client struct {
	cfg        config.ArchiveConfig
	httpClient *http.Client
}

func NewClient(cfg config.ArchiveConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

func (c *Client) IsAvailable() bool {
	return c.cfg.IsValid()
}

func (c *Client) baseURL() string {
	return strings.TrimSuffix(c.cfg.URL, "/")
}

func (c *Client) authHeader() string {
	credentials := c.cfg.Username + ":" + c.cfg.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// UploadDocument stores the content under BasePath/fileName and returns the
// archive's metadata for the created document.
func (c *Client) UploadDocument(ctx context.Context, fileName string, mimeType string, content io.Reader) (*services.ArchivedDocument, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	docPath := strings.TrimSuffix(c.cfg.BasePath, "/") + "/" + fileName

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("content", fileName)
	if err != nil {
		return nil, fmt.Errorf("building multipart payload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copying document content: %w", err)
	}
	if err := writer.WriteField("docPath", docPath); err != nil {
		return nil, fmt.Errorf("writing docPath field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/services/rest/document/createSimple", &body)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading document to archive: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading archive response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("archive upload returned HTTP %d: %s", resp.StatusCode, string(payload))
	}

	doc := parseDocumentXML(string(payload))
	if doc.Path == "" {
		doc.Path = docPath
	}
	doc.FileName = fileName
	if doc.MimeType == "" {
		doc.MimeType = mimeType
	}

	logger.Info("Document archived", "path", doc.Path, "size", doc.Size)
	return &doc, nil
}

// DownloadDocument streams the archived document at the given path. The
// caller owns closing the returned content.
func (c *Client) DownloadDocument(ctx context.Context, path string) (*services.DownloadedDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/Download?path="+url.QueryEscape(path), nil)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading document from archive: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("archive download returned HTTP %d: %s", resp.StatusCode, string(payload))
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	return &services.DownloadedDocument{
		FileName: fileNameFromPath(path),
		MimeType: mimeType,
		Content:  resp.Body,
	}, nil
}

// DeleteDocument removes the archived document at the given path.
func (c *Client) DeleteDocument(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL()+"/services/rest/document/delete?docId="+url.QueryEscape(path), nil)
	if err != nil {
		return fmt.Errorf("building delete request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deleting document from archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: document %s", apperrors.ErrNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("archive delete returned HTTP %d: %s", resp.StatusCode, string(payload))
	}
	return nil
}

func parseDocumentXML(xml string) services.ArchivedDocument {
	doc := services.ArchivedDocument{
		Path:     xmlTagValue(xml, "path"),
		MimeType: xmlTagValue(xml, "mimeType"),
	}
	if sizeStr := xmlTagValue(xml, "size"); sizeStr != "" {
		if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil {
			doc.Size = size
		}
	}
	return doc
}

func xmlTagValue(xml string, tag string) string {
	re := regexp.MustCompile("<" + tag + ">(.*?)</" + tag + ">")
	if m := re.FindStringSubmatch(xml); m != nil {
		return m[1]
	}
	return ""
}

func fileNameFromPath(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
