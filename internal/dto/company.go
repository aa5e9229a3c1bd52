package dto

import (
	"time"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a new company.
type CreateCompanyRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"taxID" binding:"required"`
}

// UpdateCompanyRequest defines the data allowed for updating a company.
type UpdateCompanyRequest struct {
	Name  *string `json:"name"`
	TaxID *string `json:"taxID"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID string    `json:"companyID"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: c.CompanyID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToListCompanyResponse converts a slice of domain.Company to CompanyResponse DTOs
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = ToCompanyResponse(&c)
	}
	return res
}
