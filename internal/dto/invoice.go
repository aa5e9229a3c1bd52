package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to create a bare invoice.
// New invoices always start in DRAFT.
type CreateInvoiceRequest struct {
	UserID    string  `json:"userID" binding:"required"`
	CardID    *string `json:"cardID"`
	CompanyID string  `json:"companyID" binding:"required"`
	CountryID string  `json:"countryID" binding:"required"`
	Path      string  `json:"path" binding:"required"`
	FileName  *string `json:"fileName"`
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
type UpdateInvoiceRequest struct {
	CardID    *string `json:"cardID"`
	CompanyID *string `json:"companyID"`
	CountryID *string `json:"countryID"`
	Path      *string `json:"path"`
	FileName  *string `json:"fileName"`
}

// UpdateInvoiceStatusRequest carries the target status for the generic
// status-change operation.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID         string    `json:"invoiceID"`
	UserID            string    `json:"userID"`
	CardID            *string   `json:"cardID,omitempty"`
	CompanyID         string    `json:"companyID"`
	CountryID         string    `json:"countryID"`
	Path              string    `json:"path"`
	FileName          *string   `json:"fileName,omitempty"`
	Status            string    `json:"status"`
	StatusDisplayName string    `json:"statusDisplayName"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:         inv.InvoiceID,
		UserID:            inv.UserID,
		CardID:            inv.CardID,
		CompanyID:         inv.CompanyID,
		CountryID:         inv.CountryID,
		Path:              inv.Path,
		FileName:          inv.FileName,
		Status:            string(inv.Status),
		StatusDisplayName: inv.Status.DisplayName(),
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to InvoiceResponse DTOs
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}

// CreateInvoiceFieldRequest defines the data needed to attach extracted
// fields to an invoice.
type CreateInvoiceFieldRequest struct {
	InvoiceID     string          `json:"invoiceID" binding:"required"`
	VendorName    string          `json:"vendorName" binding:"required"`
	InvoiceDate   time.Time       `json:"invoiceDate" binding:"required"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	Currency      string          `json:"currency" binding:"required,len=3,uppercase"`
	Concept       string          `json:"concept"`
	CategoryID    *string         `json:"categoryID"`
	CostCenterID  *string         `json:"costCenterID"`
	ClientVisited *string         `json:"clientVisited"`
	Notes         *string         `json:"notes"`
}

// UpdateInvoiceFieldRequest defines the data allowed for updating invoice
// fields. The invoice binding never changes.
type UpdateInvoiceFieldRequest struct {
	VendorName    *string          `json:"vendorName"`
	InvoiceDate   *time.Time       `json:"invoiceDate"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	Currency      *string          `json:"currency" binding:"omitempty,len=3,uppercase"`
	Concept       *string          `json:"concept"`
	CategoryID    *string          `json:"categoryID"`
	CostCenterID  *string          `json:"costCenterID"`
	ClientVisited *string          `json:"clientVisited"`
	Notes         *string          `json:"notes"`
}

// InvoiceFieldResponse defines the data returned for an invoice field.
type InvoiceFieldResponse struct {
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
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToInvoiceFieldResponse converts a domain.InvoiceField to its DTO
func ToInvoiceFieldResponse(f *domain.InvoiceField) InvoiceFieldResponse {
	return InvoiceFieldResponse{
		FieldID:       f.FieldID,
		InvoiceID:     f.InvoiceID,
		VendorName:    f.VendorName,
		InvoiceDate:   f.InvoiceDate,
		TotalAmount:   f.TotalAmount,
		Currency:      f.Currency,
		Concept:       f.Concept,
		CategoryID:    f.CategoryID,
		CostCenterID:  f.CostCenterID,
		ClientVisited: f.ClientVisited,
		Notes:         f.Notes,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// CreateCompleteInvoiceRequest creates the invoice and its extracted fields
// in one call. Status on the invoice side is forced to DRAFT.
type CreateCompleteInvoiceRequest struct {
	UserID        string          `json:"userID" binding:"required"`
	CardID        *string         `json:"cardID"`
	CompanyID     string          `json:"companyID" binding:"required"`
	CountryID     string          `json:"countryID" binding:"required"`
	Path          string          `json:"path" binding:"required"`
	FileName      *string         `json:"fileName"`
	VendorName    string          `json:"vendorName" binding:"required"`
	InvoiceDate   time.Time       `json:"invoiceDate" binding:"required"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	Currency      string          `json:"currency" binding:"required,len=3,uppercase"`
	Concept       string          `json:"concept"`
	CategoryID    *string         `json:"categoryID"`
	CostCenterID  *string         `json:"costCenterID"`
	ClientVisited *string         `json:"clientVisited"`
	Notes         *string         `json:"notes"`
}

// UpdateCompleteInvoiceRequest updates the aggregate. Only the country moves
// on the invoice side; path, fileName, card and status are immutable here.
type UpdateCompleteInvoiceRequest struct {
	FieldID       string           `json:"fieldID" binding:"required"`
	CountryID     *string          `json:"countryID"`
	VendorName    *string          `json:"vendorName"`
	InvoiceDate   *time.Time       `json:"invoiceDate"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	Currency      *string          `json:"currency" binding:"omitempty,len=3,uppercase"`
	Concept       *string          `json:"concept"`
	CategoryID    *string          `json:"categoryID"`
	CostCenterID  *string          `json:"costCenterID"`
	ClientVisited *string          `json:"clientVisited"`
	Notes         *string          `json:"notes"`
}

// CompleteInvoiceResponse is the invoice plus its extracted fields.
type CompleteInvoiceResponse struct {
	Invoice InvoiceResponse      `json:"invoice"`
	Fields  InvoiceFieldResponse `json:"fields"`
}

// ToCompleteInvoiceResponse assembles the aggregate response.
func ToCompleteInvoiceResponse(inv *domain.Invoice, f *domain.InvoiceField) *CompleteInvoiceResponse {
	return &CompleteInvoiceResponse{
		Invoice: ToInvoiceResponse(inv),
		Fields:  ToInvoiceFieldResponse(f),
	}
}
