package domain

// Category classifies invoice fields (e.g. travel, meals).
type Category struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
