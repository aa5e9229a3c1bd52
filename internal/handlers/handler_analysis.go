package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
	"github.com/datum-redsoft/expense-backend/internal/middleware"
)

// analysisHandler handles the OCR analysis pipeline endpoints.
type analysisHandler struct {
	analysisService portssvc.InvoiceAnalysisSvcFacade
}

func newAnalysisHandler(s portssvc.InvoiceAnalysisSvcFacade) *analysisHandler {
	return &analysisHandler{analysisService: s}
}

// registerAnalysisRoutes registers the OCR analysis and status routes.
func registerAnalysisRoutes(rg *gin.RouterGroup, analysisService portssvc.InvoiceAnalysisSvcFacade) {
	h := newAnalysisHandler(analysisService)

	rg.POST("/ocr", h.analyzeInvoice)
	rg.GET("/status", h.serviceStatus)
}

// analyzeInvoice godoc
// @Summary Analyze an invoice document
// @Description Runs OCR over the raw document bytes and extracts the four invoice fields
// @Tags analysis
// @Accept image/jpeg,image/png,image/tiff,image/bmp,application/pdf
// @Produce json
// @Param document body string true "Raw document bytes"
// @Success 200 {object} dto.OCRAnalysisResponse
// @Failure 400 {object} ErrorResponse "Invalid document"
// @Failure 500 {object} ErrorResponse "OCR or extraction failure"
// @Router /ocr [post]
func (h *analysisHandler) analyzeInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	document, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read request body", err)
		return
	}

	contentType := c.GetHeader("Content-Type")
	logger.Info("Received invoice for analysis", "content_type", contentType, "size", len(document))

	result, err := h.analysisService.AnalyzeInvoice(c.Request.Context(), document, contentType)
	if err != nil {
		logger.Error("Invoice analysis failed", "error", err)
		respondServiceError(c, err, "Invoice analysis failed")
		return
	}

	logger.Info("Invoice analysis completed",
		"fallback", result.Fallback,
		"processing_time_ms", result.ProcessingTimeMs)
	c.JSON(http.StatusOK, toOCRAnalysisResponse(result))
}

// toOCRAnalysisResponse converts an analysis result to the API shape.
func toOCRAnalysisResponse(result *portssvc.AnalysisResult) dto.OCRAnalysisResponse {
	return dto.OCRAnalysisResponse{
		Status:  "success",
		OCRText: result.OCRText,
		InvoiceData: &dto.InvoiceDataResponse{
			VendorName:  result.Fields.VendorName,
			InvoiceDate: result.Fields.InvoiceDate,
			TotalAmount: result.Fields.TotalAmount,
			Currency:    result.Fields.Currency,
		},
		ProcessingTimeMs: result.ProcessingTimeMs,
	}
}

// toServiceStatusResponse converts a status probe to the API shape.
func toServiceStatusResponse(status portssvc.ServiceStatus) dto.ServiceStatusResponse {
	overall := "degraded"
	if status.Ready {
		overall = "healthy"
	}
	return dto.ServiceStatusResponse{
		Status:                     overall,
		OCRServiceAvailable:        status.OCRConfigured,
		ExtractionServiceAvailable: status.LLMConfigured,
		ExtractionMethod:           status.LLMMethod,
		Timestamp:                  time.Now().UTC(),
	}
}

// serviceStatus godoc
// @Summary Report extraction pipeline readiness
// @Description Pure configuration check of the OCR and extraction backends; no network calls
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.ServiceStatusResponse
// @Router /status [get]
func (h *analysisHandler) serviceStatus(c *gin.Context) {
	status := h.analysisService.Status(c.Request.Context())
	c.JSON(http.StatusOK, toServiceStatusResponse(status))
}
