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

type CountryService struct {
	countryRepo portsrepo.CountryRepositoryFacade
}

func NewCountryService(countryRepo portsrepo.CountryRepositoryFacade) *CountryService {
	return &CountryService{countryRepo: countryRepo}
}

func (s *CountryService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*domain.Country, error) {
	now := time.Now()
	country := domain.Country{
		CountryID: uuid.NewString(),
		Name:      req.Name,
		Code:      req.Code,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.countryRepo.SaveCountry(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to create country in service: %w", err)
	}
	return &country, nil
}

func (s *CountryService) GetCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	return s.countryRepo.FindCountryByID(ctx, countryID)
}

func (s *CountryService) GetCountries(ctx context.Context, limit int, offset int) ([]domain.Country, error) {
	countries, err := s.countryRepo.FindCountries(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries in service: %w", err)
	}
	return countries, nil
}

func (s *CountryService) UpdateCountry(ctx context.Context, countryID string, req dto.UpdateCountryRequest) (*domain.Country, error) {
	country, err := s.countryRepo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		country.Name = *req.Name
	}
	if req.Code != nil {
		country.Code = *req.Code
	}
	country.UpdatedAt = time.Now()

	if err := s.countryRepo.UpdateCountry(ctx, *country); err != nil {
		return nil, fmt.Errorf("failed to update country in service: %w", err)
	}
	return country, nil
}

func (s *CountryService) DeleteCountry(ctx context.Context, countryID string) error {
	return s.countryRepo.DeleteCountry(ctx, countryID)
}
