package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo       UserRepositoryFacade
	CompanyRepo    CompanyRepositoryFacade
	CountryRepo    CountryRepositoryFacade
	CategoryRepo   CategoryRepositoryFacade
	CostCenterRepo CostCenterRepositoryFacade
	CardRepo       CardRepositoryFacade
	InvoiceRepo    InvoiceRepositoryFacade
}
