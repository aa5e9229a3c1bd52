package services

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

// InvoiceFieldSvcFacade defines the business operations for invoice fields.
type InvoiceFieldSvcFacade interface {
	CreateInvoiceField(ctx context.Context, req dto.CreateInvoiceFieldRequest) (*domain.InvoiceField, error)
	GetInvoiceFieldByID(ctx context.Context, fieldID string) (*domain.InvoiceField, error)
	GetInvoiceFieldByInvoiceID(ctx context.Context, invoiceID string) (*domain.InvoiceField, error)
	UpdateInvoiceField(ctx context.Context, fieldID string, req dto.UpdateInvoiceFieldRequest) (*domain.InvoiceField, error)
	DeleteInvoiceField(ctx context.Context, fieldID string) error
}
