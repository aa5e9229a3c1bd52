package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
	"github.com/datum-redsoft/expense-backend/internal/middleware"
)

type documentHandler struct {
	archiveService portssvc.ArchiveSvcFacade
}

func newDocumentHandler(s portssvc.ArchiveSvcFacade) *documentHandler {
	return &documentHandler{archiveService: s}
}

func registerDocumentRoutes(rg *gin.RouterGroup, archiveService portssvc.ArchiveSvcFacade) {
	h := newDocumentHandler(archiveService)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.uploadDocument)
		documents.GET("/download", h.downloadDocument)
		documents.DELETE("", h.deleteDocument)
	}
}

// uploadDocument godoc
// @Summary Archive an invoice document
// @Description Stores the uploaded file in the document archive and returns
// @Description the archive path to reference from invoices.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to archive"
// @Success 201 {object} dto.DocumentUploadResponse
// @Failure 400 {object} ErrorResponse "Missing file part"
// @Router /documents [post]
func (h *documentHandler) uploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Multipart field 'file' is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Could not read uploaded file", nil)
		return
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	doc, err := h.archiveService.UploadDocument(c.Request.Context(), fileHeader.Filename, mimeType, file)
	if err != nil {
		respondServiceError(c, err, "Failed to archive document")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("document archived", "path", doc.Path, "size", fileHeader.Size)

	c.JSON(http.StatusCreated, toDocumentUploadResponse(doc))
}

// toDocumentUploadResponse converts archive metadata to the API shape.
func toDocumentUploadResponse(doc *portssvc.ArchivedDocument) dto.DocumentUploadResponse {
	return dto.DocumentUploadResponse{
		Path:     doc.Path,
		FileName: doc.FileName,
		MimeType: doc.MimeType,
		Size:     doc.Size,
	}
}

// downloadDocument godoc
// @Summary Download an archived document
// @Description Streams the archived document's content. The path query
// @Description parameter is the archive path returned on upload.
// @Tags documents
// @Produce octet-stream
// @Param path query string true "Archive path"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents/download [get]
func (h *documentHandler) downloadDocument(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter path is required", nil)
		return
	}

	doc, err := h.archiveService.DownloadDocument(c.Request.Context(), path)
	if err != nil {
		respondServiceError(c, err, "Failed to download document")
		return
	}
	defer doc.Content.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Type", doc.MimeType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, doc.Content); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("document stream interrupted", "path", path, "error", err)
	}
}

// deleteDocument godoc
// @Summary Delete an archived document
// @Tags documents
// @Param path query string true "Archive path"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter path is required", nil)
		return
	}

	if err := h.archiveService.DeleteDocument(c.Request.Context(), path); err != nil {
		respondServiceError(c, err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}
