package services

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

// CompanySvcFacade defines the business operations for companies.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	GetCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error)
	DeleteCompany(ctx context.Context, companyID string) error
}
