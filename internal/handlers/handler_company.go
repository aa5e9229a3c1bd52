package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(s portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: s}
}

func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:id", h.getCompanyByID)
		companies.PUT("/:id", h.updateCompany)
		companies.DELETE("/:id", h.deleteCompany)
	}
}

// createCompany godoc
// @Summary Create a new company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 409 {object} ErrorResponse "Company name already exists"
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create company")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	limit, offset := paginationParams(c)
	companies, err := h.companyService.GetCompanies(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompanyResponse(companies))
}

// getCompanyByID godoc
// @Summary Get a company by id
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} ErrorResponse "Company not found"
// @Router /companies/{id} [get]
func (h *companyHandler) getCompanyByID(c *gin.Context) {
	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} ErrorResponse "Company not found"
// @Router /companies/{id} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// deleteCompany godoc
// @Summary Delete a company
// @Tags companies
// @Param id path string true "Company ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Router /companies/{id} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete company")
		return
	}
	c.Status(http.StatusNoContent)
}
