package pgsql

import (
	portsrepo "github.com/datum-redsoft/expense-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	countryRepo := newPgxCountryRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	costCenterRepo := newPgxCostCenterRepository(dbPool)
	cardRepo := newPgxCardRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		CompanyRepo:    companyRepo,
		CountryRepo:    countryRepo,
		CategoryRepo:   categoryRepo,
		CostCenterRepo: costCenterRepo,
		CardRepo:       cardRepo,
		InvoiceRepo:    invoiceRepo,
	}
}
