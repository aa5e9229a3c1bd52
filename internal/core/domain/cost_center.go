package domain

// CostCenter is the accounting unit an expense is attributed to.
type CostCenter struct {
	CostCenterID string `json:"costCenterID"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	AuditFields
}
