package repositories

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CostCenterRepositoryFacade defines persistence operations for cost centers.
type CostCenterRepositoryFacade interface {
	SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error
	FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error)
	FindCostCenterByCode(ctx context.Context, code string) (*domain.CostCenter, error)
	FindCostCenters(ctx context.Context, limit int, offset int) ([]domain.CostCenter, error)
	UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) error
	DeleteCostCenter(ctx context.Context, costCenterID string) error
}
