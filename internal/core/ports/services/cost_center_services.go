package services

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

// CostCenterSvcFacade defines the business operations for cost centers.
type CostCenterSvcFacade interface {
	CreateCostCenter(ctx context.Context, req dto.CreateCostCenterRequest) (*domain.CostCenter, error)
	GetCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error)
	GetCostCenters(ctx context.Context, limit int, offset int) ([]domain.CostCenter, error)
	UpdateCostCenter(ctx context.Context, costCenterID string, req dto.UpdateCostCenterRequest) (*domain.CostCenter, error)
	DeleteCostCenter(ctx context.Context, costCenterID string) error
}
