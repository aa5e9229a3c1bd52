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

type InvoiceService struct {
	invoiceRepo    portsrepo.InvoiceRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
	companyRepo    portsrepo.CompanyRepositoryFacade
	countryRepo    portsrepo.CountryRepositoryFacade
	cardRepo       portsrepo.CardRepositoryFacade
	categoryRepo   portsrepo.CategoryRepositoryFacade
	costCenterRepo portsrepo.CostCenterRepositoryFacade
}

func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	countryRepo portsrepo.CountryRepositoryFacade,
	cardRepo portsrepo.CardRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	costCenterRepo portsrepo.CostCenterRepositoryFacade,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:    invoiceRepo,
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		countryRepo:    countryRepo,
		cardRepo:       cardRepo,
		categoryRepo:   categoryRepo,
		costCenterRepo: costCenterRepo,
	}
}

// validateReferences checks that every referenced entity exists. Optional
// references are only checked when present.
func (s *InvoiceService) validateReferences(ctx context.Context, userID, companyID, countryID string, cardID, categoryID, costCenterID *string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("invoice user lookup: %w", err)
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return fmt.Errorf("invoice company lookup: %w", err)
	}
	if _, err := s.countryRepo.FindCountryByID(ctx, countryID); err != nil {
		return fmt.Errorf("invoice country lookup: %w", err)
	}
	if cardID != nil {
		if _, err := s.cardRepo.FindCardByID(ctx, *cardID); err != nil {
			return fmt.Errorf("invoice card lookup: %w", err)
		}
	}
	if categoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID); err != nil {
			return fmt.Errorf("invoice category lookup: %w", err)
		}
	}
	if costCenterID != nil {
		if _, err := s.costCenterRepo.FindCostCenterByID(ctx, *costCenterID); err != nil {
			return fmt.Errorf("invoice cost center lookup: %w", err)
		}
	}
	return nil
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := s.validateReferences(ctx, req.UserID, req.CompanyID, req.CountryID, req.CardID, nil, nil); err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID: uuid.NewString(),
		UserID:    req.UserID,
		CardID:    req.CardID,
		CompanyID: req.CompanyID,
		CountryID: req.CountryID,
		Path:      req.Path,
		FileName:  req.FileName,
		Status:    domain.InvoiceStatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice in service: %w", err)
	}
	return &invoice, nil
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *InvoiceService) GetInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices in service: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetInvoicesByUserID(ctx context.Context, userID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoicesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for user in service: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetInvoicesByCardID(ctx context.Context, cardID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoicesByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for card in service: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetInvoicesByStatus(ctx context.Context, status string) ([]domain.Invoice, error) {
	invoiceStatus := domain.InvoiceStatus(status)
	if !invoiceStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, status)
	}
	invoices, err := s.invoiceRepo.FindInvoicesByStatus(ctx, invoiceStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices by status in service: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.CardID != nil {
		invoice.CardID = req.CardID
	}
	if req.CompanyID != nil {
		invoice.CompanyID = *req.CompanyID
	}
	if req.CountryID != nil {
		invoice.CountryID = *req.CountryID
	}
	if req.Path != nil {
		invoice.Path = *req.Path
	}
	if req.FileName != nil {
		invoice.FileName = req.FileName
	}

	if err := s.validateReferences(ctx, invoice.UserID, invoice.CompanyID, invoice.CountryID, invoice.CardID, nil, nil); err != nil {
		return nil, err
	}
	invoice.UpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice in service: %w", err)
	}
	return invoice, nil
}

// UpdateInvoiceStatus sets any valid status directly. No transition table is
// enforced here; the bulk approval path owns the DRAFT to PROCESSED rule.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status string) (*domain.Invoice, error) {
	invoiceStatus := domain.InvoiceStatus(status)
	if !invoiceStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, status)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, invoiceStatus, now); err != nil {
		return nil, fmt.Errorf("failed to update invoice status in service: %w", err)
	}
	invoice.Status = invoiceStatus
	invoice.UpdatedAt = now
	return invoice, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
}

// CreateCompleteInvoice persists the invoice and its extracted fields in one
// transaction. The invoice always starts in DRAFT no matter what the caller
// sends.
func (s *InvoiceService) CreateCompleteInvoice(ctx context.Context, req dto.CreateCompleteInvoiceRequest) (*dto.CompleteInvoiceResponse, error) {
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}
	if err := s.validateReferences(ctx, req.UserID, req.CompanyID, req.CountryID, req.CardID, req.CategoryID, req.CostCenterID); err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID: uuid.NewString(),
		UserID:    req.UserID,
		CardID:    req.CardID,
		CompanyID: req.CompanyID,
		CountryID: req.CountryID,
		Path:      req.Path,
		FileName:  req.FileName,
		Status:    domain.InvoiceStatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	field := domain.InvoiceField{
		FieldID:       uuid.NewString(),
		InvoiceID:     invoice.InvoiceID,
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

	if err := s.invoiceRepo.CreateInvoiceWithField(ctx, invoice, field); err != nil {
		return nil, fmt.Errorf("failed to create complete invoice in service: %w", err)
	}
	return dto.ToCompleteInvoiceResponse(&invoice, &field), nil
}

// UpdateCompleteInvoice updates the aggregate atomically. Path, file name,
// card binding and status are never touched here.
func (s *InvoiceService) UpdateCompleteInvoice(ctx context.Context, invoiceID string, req dto.UpdateCompleteInvoiceRequest) (*dto.CompleteInvoiceResponse, error) {
	if req.TotalAmount != nil && req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrValidation)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	field, err := s.invoiceRepo.FindInvoiceFieldByID(ctx, req.FieldID)
	if err != nil {
		return nil, err
	}
	if field.InvoiceID != invoice.InvoiceID {
		return nil, fmt.Errorf("%w: field %s does not belong to invoice %s", apperrors.ErrValidation, req.FieldID, invoiceID)
	}

	if req.CountryID != nil {
		invoice.CountryID = *req.CountryID
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

	if err := s.validateReferences(ctx, invoice.UserID, invoice.CompanyID, invoice.CountryID, nil, field.CategoryID, field.CostCenterID); err != nil {
		return nil, err
	}

	now := time.Now()
	invoice.UpdatedAt = now
	field.UpdatedAt = now

	if err := s.invoiceRepo.UpdateInvoiceWithField(ctx, *invoice, *field); err != nil {
		return nil, fmt.Errorf("failed to update complete invoice in service: %w", err)
	}
	return dto.ToCompleteInvoiceResponse(invoice, field), nil
}

func (s *InvoiceService) GetCompleteInvoice(ctx context.Context, invoiceID string) (*dto.CompleteInvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	field, err := s.invoiceRepo.FindInvoiceFieldByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return dto.ToCompleteInvoiceResponse(invoice, field), nil
}
