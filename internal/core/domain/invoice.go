package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enumerates the processing/approval lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft      InvoiceStatus = "DRAFT"
	InvoiceStatusPending    InvoiceStatus = "PENDING"
	InvoiceStatusProcessing InvoiceStatus = "PROCESSING"
	InvoiceStatusProcessed  InvoiceStatus = "PROCESSED"
	InvoiceStatusApproved   InvoiceStatus = "APPROVED"
	InvoiceStatusRejected   InvoiceStatus = "REJECTED"
	InvoiceStatusPaid       InvoiceStatus = "PAID"
	InvoiceStatusCancelled  InvoiceStatus = "CANCELLED"
	InvoiceStatusError      InvoiceStatus = "ERROR"
)

// invoiceStatusDisplayNames maps each status to its Spanish display name.
var invoiceStatusDisplayNames = map[InvoiceStatus]string{
	InvoiceStatusDraft:      "Borrador",
	InvoiceStatusPending:    "Pendiente",
	InvoiceStatusProcessing: "Procesando",
	InvoiceStatusProcessed:  "Procesada",
	InvoiceStatusApproved:   "Aprobada",
	InvoiceStatusRejected:   "Rechazada",
	InvoiceStatusPaid:       "Pagada",
	InvoiceStatusCancelled:  "Cancelada",
	InvoiceStatusError:      "Error",
}

// DisplayName returns the Spanish display name for the status.
func (s InvoiceStatus) DisplayName() string {
	if name, ok := invoiceStatusDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

// IsValid reports whether s is one of the known statuses.
func (s InvoiceStatus) IsValid() bool {
	_, ok := invoiceStatusDisplayNames[s]
	return ok
}

// Invoice represents an uploaded expense document. It is created in DRAFT
// and owns at most one InvoiceField.
type Invoice struct {
	InvoiceID string        `json:"invoiceID"`
	UserID    string        `json:"userID"`
	CardID    *string       `json:"cardID,omitempty"`
	CompanyID string        `json:"companyID"`
	CountryID string        `json:"countryID"`
	Path      string        `json:"path"`
	FileName  *string       `json:"fileName,omitempty"`
	Status    InvoiceStatus `json:"status"`
	AuditFields
}

// InvoiceField holds the structured attributes extracted from an invoice.
// Each field belongs to exactly one invoice, and an invoice has at most one.
type InvoiceField struct {
	FieldID       string          `json:"fieldID"`
	InvoiceID     string          `json:"invoiceID"`
	VendorName    string          `json:"vendorName"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Currency      string          `json:"currency"`
	Concept       string          `json:"concept"`
	CategoryID    *string         `json:"categoryID,omitempty"`
	CostCenterID  *string         `json:"costCenterID,omitempty"`
	ClientVisited *string         `json:"clientVisited,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	AuditFields
}
