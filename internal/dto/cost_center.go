package dto

import (
	"time"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CreateCostCenterRequest defines the data needed to create a new cost center.
type CreateCostCenterRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// UpdateCostCenterRequest defines the data allowed for updating a cost center.
type UpdateCostCenterRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// CostCenterResponse defines the data returned for a cost center.
type CostCenterResponse struct {
	CostCenterID string    `json:"costCenterID"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToCostCenterResponse converts a domain.CostCenter to CostCenterResponse DTO
func ToCostCenterResponse(c *domain.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		CostCenterID: c.CostCenterID,
		Name:         c.Name,
		Code:         c.Code,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToListCostCenterResponse converts a slice of domain.CostCenter to CostCenterResponse DTOs
func ToListCostCenterResponse(costCenters []domain.CostCenter) []CostCenterResponse {
	res := make([]CostCenterResponse, len(costCenters))
	for i, c := range costCenters {
		res[i] = ToCostCenterResponse(&c)
	}
	return res
}
