package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	portsrepo "github.com/datum-redsoft/expense-backend/internal/core/ports/repositories"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type InvoiceFieldService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

func NewInvoiceFieldService(invoiceRepo portsrepo.InvoiceRepositoryFacade) *InvoiceFieldService {
	return &InvoiceFieldService{invoiceRepo: invoiceRepo}
}

func (s *InvoiceFieldService) CreateInvoiceField(ctx context.Context, req dto.CreateInvoiceFieldRequest) (*domain.InvoiceField, error) {
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID); err != nil {
		return nil, fmt.Errorf("invoice lookup for field: %w", err)
	}

	now := time.Now()
	field := domain.InvoiceField{
		FieldID:       uuid.NewString(),
		InvoiceID:     req.InvoiceID,
		VendorName:    req.VendorName,
		InvoiceDate:   req.InvoiceDate,
		TotalAmount:   req.TotalAmount,
		Currency:      req.Currency,
		Concept:       req.Concept,
		CategoryID:    req.CategoryID,
		CostCenterID:  req.CostCenterID,
		ClientVisited: req.ClientVisited,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoiceField(ctx, field); err != nil {
		return nil, fmt.Errorf("failed to create invoice field in service: %w", err)
	}
	return &field, nil
}

func (s *InvoiceFieldService) GetInvoiceFieldByID(ctx context.Context, fieldID string) (*domain.InvoiceField, error) {
	return s.invoiceRepo.FindInvoiceFieldByID(ctx, fieldID)
}

func (s *InvoiceFieldService) GetInvoiceFieldByInvoiceID(ctx context.Context, invoiceID string) (*domain.InvoiceField, error) {
	return s.invoiceRepo.FindInvoiceFieldByInvoiceID(ctx, invoiceID)
}

func (s *InvoiceFieldService) UpdateInvoiceField(ctx context.Context, fieldID string, req dto.UpdateInvoiceFieldRequest) (*domain.InvoiceField, error) {
	if req.TotalAmount != nil && req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}

	field, err := s.invoiceRepo.FindInvoiceFieldByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if req.VendorName != nil {
		field.VendorName = *req.VendorName
	}
	if req.InvoiceDate != nil {
		field.InvoiceDate = *req.InvoiceDate
	}
	if req.TotalAmount != nil {
		field.TotalAmount = *req.TotalAmount
	}
	if req.Currency != nil {
		field.Currency = *req.Currency
	}
	if req.Concept != nil {
		field.Concept = *req.Concept
	}
	if req.CategoryID != nil {
		field.CategoryID = req.CategoryID
	}
	if req.CostCenterID != nil {
		field.CostCenterID = req.CostCenterID
	}
	if req.ClientVisited != nil {
		field.ClientVisited = req.ClientVisited
	}
	if req.Notes != nil {
		field.Notes = req.Notes
	}
	field.UpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateInvoiceField(ctx, *field); err != nil {
		return nil, fmt.Errorf("failed to update invoice field in service: %w", err)
	}
	return field, nil
}

func (s *InvoiceFieldService) DeleteInvoiceField(ctx context.Context, fieldID string) error {
	return s.invoiceRepo.DeleteInvoiceField(ctx, fieldID)
}
