package services

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

// InvoiceSvcFacade defines the business operations for invoices, including
// the combined invoice + fields aggregate used by the mobile client.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	GetInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error)
	GetInvoicesByUserID(ctx context.Context, userID string) ([]domain.Invoice, error)
	GetInvoicesByCardID(ctx context.Context, cardID string) ([]domain.Invoice, error)
	GetInvoicesByStatus(ctx context.Context, status string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// CreateCompleteInvoice persists the invoice and its extracted fields
	// atomically.
	CreateCompleteInvoice(ctx context.Context, req dto.CreateCompleteInvoiceRequest) (*dto.CompleteInvoiceResponse, error)

	// UpdateCompleteInvoice updates the user-editable parts of the aggregate
	// atomically. Storage location, card binding and status are not touched.
	UpdateCompleteInvoice(ctx context.Context, invoiceID string, req dto.UpdateCompleteInvoiceRequest) (*dto.CompleteInvoiceResponse, error)

	GetCompleteInvoice(ctx context.Context, invoiceID string) (*dto.CompleteInvoiceResponse, error)
}
