package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
)

// ErrorResponse is the single structured error envelope every failing
// request returns.
type ErrorResponse struct {
	Status    string    `json:"status"`
	ErrorCode string    `json:"error_code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func respondError(c *gin.Context, httpStatus int, errorCode string, message string, err error) {
	details := ""
	// Internal detail strings leak schema and infrastructure names; only
	// expose them outside release mode.
	if err != nil && gin.Mode() != gin.ReleaseMode {
		details = err.Error()
	}
	c.JSON(httpStatus, ErrorResponse{
		Status:    "error",
		ErrorCode: errorCode,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// fallbackMessage covers the unexpected 500 case.
func respondServiceError(c *gin.Context, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Resource not found", err)
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, apperrors.ErrDuplicate):
		respondError(c, http.StatusConflict, "DUPLICATE", err.Error(), nil)
	case errors.Is(err, apperrors.ErrOCR):
		respondError(c, http.StatusInternalServerError, "OCR_ERROR", "Text extraction failed", err)
	case errors.Is(err, apperrors.ErrExtraction):
		respondError(c, http.StatusInternalServerError, "EXTRACTION_ERROR", "Invoice field extraction failed", err)
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallbackMessage, err)
	}
}
