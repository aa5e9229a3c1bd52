package repositories

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CountryRepositoryFacade defines persistence operations for countries.
type CountryRepositoryFacade interface {
	SaveCountry(ctx context.Context, country domain.Country) error
	FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error)
	FindCountryByCode(ctx context.Context, code string) (*domain.Country, error)
	FindCountries(ctx context.Context, limit int, offset int) ([]domain.Country, error)
	UpdateCountry(ctx context.Context, country domain.Country) error
	DeleteCountry(ctx context.Context, countryID string) error
}
