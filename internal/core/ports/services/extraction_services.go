package services

import "context"

// InvoiceData carries the four fields extracted from an invoice. Values keep
// the extractor's textual form; "Not found" marks a field the model could not
// locate and "0" a missing amount.
type InvoiceData struct {
	VendorName  string `json:"vendor_name"`
	InvoiceDate string `json:"invoice_date"`
	TotalAmount string `json:"total_amount"`
	Currency    string `json:"currency"`
}

// ExtractionOutcome is the tagged result of a field extraction. Fallback is
// true when every attempt failed and Fields holds the error placeholder
// instead of model output.
type ExtractionOutcome struct {
	Fields     InvoiceData
	Fallback   bool
	RawContent string
}

// AnalysisResult is the full output of one invoice analysis run.
type AnalysisResult struct {
	OCRText          string      `json:"ocr_text"`
	Fields           InvoiceData `json:"extracted_fields"`
	Fallback         bool        `json:"fallback"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
}

// ServiceStatus reports readiness of the external extraction dependencies.
type ServiceStatus struct {
	OCRConfigured bool   `json:"ocr_configured"`
	LLMConfigured bool   `json:"llm_configured"`
	LLMMethod     string `json:"llm_method"`
	Ready         bool   `json:"ready"`
}

// TextExtractor turns a document's bytes into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, document []byte) (string, error)

	// IsAvailable reports whether the extractor has complete configuration.
	// It performs no network calls.
	IsAvailable() bool
}

// FieldExtractor pulls structured invoice fields out of OCR text.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, ocrText string) (ExtractionOutcome, error)
	IsAvailable() bool

	// Method names the extraction backend for status reporting.
	Method() string
}

// InvoiceAnalysisSvcFacade orchestrates the OCR and field extraction stages.
// Input validation (content type, size bounds) happens before any network
// call.
type InvoiceAnalysisSvcFacade interface {
	AnalyzeInvoice(ctx context.Context, document []byte, contentType string) (*AnalysisResult, error)
	Status(ctx context.Context) ServiceStatus
}
