package services

// ServiceContainer holds all service facades wired at startup.
type ServiceContainer struct {
	UserSvc         UserSvcFacade
	CompanySvc      CompanySvcFacade
	CountrySvc      CountrySvcFacade
	CategorySvc     CategorySvcFacade
	CostCenterSvc   CostCenterSvcFacade
	CardSvc         CardSvcFacade
	InvoiceSvc      InvoiceSvcFacade
	InvoiceFieldSvc InvoiceFieldSvcFacade
	AnalysisSvc     InvoiceAnalysisSvcFacade
	ArchiveSvc      ArchiveSvcFacade
}
