package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	portsrepo "github.com/datum-redsoft/expense-backend/internal/core/ports/repositories"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type CompanyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

func (s *CompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	now := time.Now()
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      req.Name,
		TaxID:     req.TaxID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company in service: %w", err)
	}
	return &company, nil
}

func (s *CompanyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *CompanyService) GetCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	companies, err := s.companyRepo.FindCompanies(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies in service: %w", err)
	}
	return companies, nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.TaxID != nil {
		company.TaxID = *req.TaxID
	}
	company.UpdatedAt = time.Now()

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		return nil, fmt.Errorf("failed to update company in service: %w", err)
	}
	return company, nil
}

func (s *CompanyService) DeleteCompany(ctx context.Context, companyID string) error {
	return s.companyRepo.DeleteCompany(ctx, companyID)
}
