package services

import (
	"context"
	"io"
)

// ArchivedDocument describes a document stored in the archive backend.
type ArchivedDocument struct {
	Path     string `json:"path"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// DownloadedDocument is an archived document's content stream. Callers own
// closing Content.
type DownloadedDocument struct {
	FileName string
	MimeType string
	Content  io.ReadCloser
}

// ArchiveSvcFacade defines the document archive operations.
type ArchiveSvcFacade interface {
	UploadDocument(ctx context.Context, fileName string, mimeType string, content io.Reader) (*ArchivedDocument, error)
	DownloadDocument(ctx context.Context, path string) (*DownloadedDocument, error)
	DeleteDocument(ctx context.Context, path string) error
	IsAvailable() bool
}
