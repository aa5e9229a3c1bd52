package services

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

// CategorySvcFacade defines the business operations for expense categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	GetCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
