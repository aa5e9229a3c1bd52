package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	portsrepo "github.com/datum-redsoft/expense-backend/internal/core/ports/repositories"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type CostCenterService struct {
	costCenterRepo portsrepo.CostCenterRepositoryFacade
}

func NewCostCenterService(costCenterRepo portsrepo.CostCenterRepositoryFacade) *CostCenterService {
	return &CostCenterService{costCenterRepo: costCenterRepo}
}

func (s *CostCenterService) CreateCostCenter(ctx context.Context, req dto.CreateCostCenterRequest) (*domain.CostCenter, error) {
	now := time.Now()
	costCenter := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		Name:         req.Name,
		Code:         req.Code,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.costCenterRepo.SaveCostCenter(ctx, costCenter); err != nil {
		return nil, fmt.Errorf("failed to create cost center in service: %w", err)
	}
	return &costCenter, nil
}

func (s *CostCenterService) GetCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	return s.costCenterRepo.FindCostCenterByID(ctx, costCenterID)
}

func (s *CostCenterService) GetCostCenters(ctx context.Context, limit int, offset int) ([]domain.CostCenter, error) {
	costCenters, err := s.costCenterRepo.FindCostCenters(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers in service: %w", err)
	}
	return costCenters, nil
}

func (s *CostCenterService) UpdateCostCenter(ctx context.Context, costCenterID string, req dto.UpdateCostCenterRequest) (*domain.CostCenter, error) {
	costCenter, err := s.costCenterRepo.FindCostCenterByID(ctx, costCenterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		costCenter.Name = *req.Name
	}
	if req.Code != nil {
		costCenter.Code = *req.Code
	}
	costCenter.UpdatedAt = time.Now()

	if err := s.costCenterRepo.UpdateCostCenter(ctx, *costCenter); err != nil {
		return nil, fmt.Errorf("failed to update cost center in service: %w", err)
	}
	return costCenter, nil
}

func (s *CostCenterService) DeleteCostCenter(ctx context.Context, costCenterID string) error {
	return s.costCenterRepo.DeleteCostCenter(ctx, costCenterID)
}
