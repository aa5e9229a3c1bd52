package repositories

import (
	"context"
	"time"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence operations for invoices and
// their 1:1 invoice fields, including the transactional aggregate writes.
type InvoiceRepositoryFacade interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error)
	FindInvoicesByUserID(ctx context.Context, userID string) ([]domain.Invoice, error)
	FindInvoicesByCardID(ctx context.Context, cardID string) ([]domain.Invoice, error)
	FindInvoicesByStatus(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedAt time.Time) error
	DeleteInvoice(ctx context.Context, invoiceID string) error

	SaveInvoiceField(ctx context.Context, field domain.InvoiceField) error
	FindInvoiceFieldByID(ctx context.Context, fieldID string) (*domain.InvoiceField, error)
	FindInvoiceFieldByInvoiceID(ctx context.Context, invoiceID string) (*domain.InvoiceField, error)
	UpdateInvoiceField(ctx context.Context, field domain.InvoiceField) error
	DeleteInvoiceField(ctx context.Context, fieldID string) error

	// CreateInvoiceWithField inserts the invoice and its field in one
	// database transaction; neither row exists if either insert fails.
	CreateInvoiceWithField(ctx context.Context, invoice domain.Invoice, field domain.InvoiceField) error

	// UpdateInvoiceWithField updates both rows in one database transaction.
	UpdateInvoiceWithField(ctx context.Context, invoice domain.Invoice, field domain.InvoiceField) error

	// ApproveDraftInvoicesInMonth transitions every DRAFT invoice of the card
	// whose invoice-field date falls in the given month to PROCESSED, as a
	// single conditional update. Returns the number of rows transitioned.
	ApproveDraftInvoicesInMonth(ctx context.Context, cardID string, year int, month time.Month, updatedAt time.Time) (int, error)
}
