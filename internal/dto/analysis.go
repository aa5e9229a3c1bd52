package dto

import "time"

// InvoiceDataResponse carries the four extracted invoice fields as the
// analysis endpoint returns them.
type InvoiceDataResponse struct {
	VendorName  string `json:"vendorName"`
	InvoiceDate string `json:"invoiceDate"`
	TotalAmount string `json:"totalAmount"`
	Currency    string `json:"currency"`
}

// OCRAnalysisResponse is the union-shaped result of POST /api/ocr. Status is
// "success" or "error"; ErrorMessage is only populated on the error shape.
type OCRAnalysisResponse struct {
	Status           string               `json:"status"`
	OCRText          string               `json:"ocr_text,omitempty"`
	InvoiceData      *InvoiceDataResponse `json:"invoice_data,omitempty"`
	ProcessingTimeMs int64                `json:"processing_time_ms"`
	ErrorMessage     string               `json:"error_message,omitempty"`
}

// ServiceStatusResponse reports readiness of the extraction dependencies.
type ServiceStatusResponse struct {
	Status                     string    `json:"status"`
	OCRServiceAvailable        bool      `json:"ocr_service_available"`
	ExtractionServiceAvailable bool      `json:"extraction_service_available"`
	ExtractionMethod           string    `json:"extraction_method"`
	Timestamp                  time.Time `json:"timestamp"`
}
