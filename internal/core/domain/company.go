package domain

// Company is a master entity referenced by invoices and cards.
type Company struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	TaxID     string `json:"taxID"`
	AuditFields
}
