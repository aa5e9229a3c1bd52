package repositories

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence operations for companies.
type CompanyRepositoryFacade interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	FindCompanyByName(ctx context.Context, name string) (*domain.Company, error)
	FindCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, company domain.Company) error
	DeleteCompany(ctx context.Context, companyID string) error
}
