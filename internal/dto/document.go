package dto

// DocumentUploadResponse defines the data returned after archiving a document.
type DocumentUploadResponse struct {
	Path     string `json:"path"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}
