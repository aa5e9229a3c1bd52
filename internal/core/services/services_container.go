package services

import (
	portsrepo "github.com/datum-redsoft/expense-backend/internal/core/ports/repositories"
	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	textExtractor portssvc.TextExtractor,
	fieldExtractor portssvc.FieldExtractor,
	archiveSvc portssvc.ArchiveSvcFacade,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.UserSvc = NewUserService(repos.UserRepo)
	container.CompanySvc = NewCompanyService(repos.CompanyRepo)
	container.CountrySvc = NewCountryService(repos.CountryRepo)
	container.CategorySvc = NewCategoryService(repos.CategoryRepo)
	container.CostCenterSvc = NewCostCenterService(repos.CostCenterRepo)
	container.CardSvc = NewCardService(repos.CardRepo, repos.InvoiceRepo, repos.UserRepo, repos.CompanyRepo)
	container.InvoiceSvc = NewInvoiceService(
		repos.InvoiceRepo,
		repos.UserRepo,
		repos.CompanyRepo,
		repos.CountryRepo,
		repos.CardRepo,
		repos.CategoryRepo,
		repos.CostCenterRepo,
	)
	container.InvoiceFieldSvc = NewInvoiceFieldService(repos.InvoiceRepo)
	container.AnalysisSvc = NewOCRAnalysisService(textExtractor, fieldExtractor)
	container.ArchiveSvc = archiveSvc

	return container
}

// Compile-time interface checks
var (
	_ portssvc.UserSvcFacade            = (*UserService)(nil)
	_ portssvc.CompanySvcFacade         = (*CompanyService)(nil)
	_ portssvc.CountrySvcFacade         = (*CountryService)(nil)
	_ portssvc.CategorySvcFacade        = (*CategoryService)(nil)
	_ portssvc.CostCenterSvcFacade      = (*CostCenterService)(nil)
	_ portssvc.CardSvcFacade            = (*CardService)(nil)
	_ portssvc.InvoiceSvcFacade         = (*InvoiceService)(nil)
	_ portssvc.InvoiceFieldSvcFacade    = (*InvoiceFieldService)(nil)
	_ portssvc.InvoiceAnalysisSvcFacade = (*OCRAnalysisService)(nil)
)
