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

type CategoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *CategoryService) GetCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category in service: %w", err)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}
