package domain

// Country is a master entity referenced by invoices.
type Country struct {
	CountryID string `json:"countryID"`
	Name      string `json:"name"`
	// Code is the 2-letter ISO country code, unique.
	Code string `json:"code"`
	AuditFields
}
