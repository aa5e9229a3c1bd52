package services

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

// CountrySvcFacade defines the business operations for countries.
type CountrySvcFacade interface {
	CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error)
	GetCountryByID(ctx context.Context, countryID string) (*domain.Country, error)
	GetCountries(ctx context.Context, limit int, offset int) ([]domain.Country, error)
	UpdateCountry(ctx context.Context, countryID string, req dto.UpdateCountryRequest) (*domain.Country, error)
	DeleteCountry(ctx context.Context, countryID string) error
}
