package dto

import (
	"time"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CreateCountryRequest defines the data needed to create a new country.
type CreateCountryRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required,len=2,uppercase"`
}

// UpdateCountryRequest defines the data allowed for updating a country.
type UpdateCountryRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code" binding:"omitempty,len=2,uppercase"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	CountryID string    `json:"countryID"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO
func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		CountryID: c.CountryID,
		Name:      c.Name,
		Code:      c.Code,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToListCountryResponse converts a slice of domain.Country to CountryResponse DTOs
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i, c := range countries {
		res[i] = ToCountryResponse(&c)
	}
	return res
}
