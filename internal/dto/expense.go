package dto

// ApproveExpenseGroupResponse reports the outcome of a bulk approval.
type ApproveExpenseGroupResponse struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updatedCount"`
}
