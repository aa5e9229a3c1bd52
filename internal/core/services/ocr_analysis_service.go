package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/middleware"
)

// Document size bounds. Anything outside is rejected before any network call.
const (
	minDocumentSize = 1 << 10  // 1 KiB
	maxDocumentSize = 10 << 20 // 10 MiB
)

// allowedContentTypes lists the document types the OCR engine accepts.
var allowedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/tiff",
	"image/bmp",
	"application/pdf",
}

// OCRAnalysisService sequences text extraction and field extraction over one
// uploaded document. Steps run strictly in order with no partial results.
type OCRAnalysisService struct {
	textExtractor  portssvc.TextExtractor
	fieldExtractor portssvc.FieldExtractor
}

func NewOCRAnalysisService(textExtractor portssvc.TextExtractor, fieldExtractor portssvc.FieldExtractor) *OCRAnalysisService {
	return &OCRAnalysisService{
		textExtractor:  textExtractor,
		fieldExtractor: fieldExtractor,
	}
}

// AnalyzeInvoice validates the document, extracts its text, extracts the
// invoice fields from that text, and reports wall-clock elapsed time. An
// unknown or missing content type is treated as JPEG instead of rejected.
func (s *OCRAnalysisService) AnalyzeInvoice(ctx context.Context, document []byte, contentType string) (*portssvc.AnalysisResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !isAllowedContentType(contentType) {
		logger.Warn("Unknown document content type, assuming JPEG", "content_type", contentType)
	}

	if len(document) == 0 {
		return nil, fmt.Errorf("%w: document is empty", apperrors.ErrValidation)
	}
	if len(document) < minDocumentSize {
		return nil, fmt.Errorf("%w: document smaller than %d bytes", apperrors.ErrValidation, minDocumentSize)
	}
	if len(document) > maxDocumentSize {
		return nil, fmt.Errorf("%w: document larger than %d bytes", apperrors.ErrValidation, maxDocumentSize)
	}

	start := time.Now()

	text, err := s.textExtractor.ExtractText(ctx, document)
	if err != nil {
		return nil, err
	}

	outcome, err := s.fieldExtractor.ExtractFields(ctx, text)
	if err != nil {
		return nil, err
	}

	return &portssvc.AnalysisResult{
		OCRText:          text,
		Fields:           outcome.Fields,
		Fallback:         outcome.Fallback,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// Status is a pure configuration probe; it never touches the network.
func (s *OCRAnalysisService) Status(ctx context.Context) portssvc.ServiceStatus {
	ocrOK := s.textExtractor.IsAvailable()
	llmOK := s.fieldExtractor.IsAvailable()
	return portssvc.ServiceStatus{
		OCRConfigured: ocrOK,
		LLMConfigured: llmOK,
		LLMMethod:     s.fieldExtractor.Method(),
		Ready:         ocrOK && llmOK,
	}
}

func isAllowedContentType(contentType string) bool {
	lowered := strings.ToLower(contentType)
	for _, allowed := range allowedContentTypes {
		if strings.Contains(lowered, allowed) {
			return true
		}
	}
	return false
}
