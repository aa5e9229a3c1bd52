package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type countryHandler struct {
	countryService portssvc.CountrySvcFacade
}

func newCountryHandler(s portssvc.CountrySvcFacade) *countryHandler {
	return &countryHandler{countryService: s}
}

func registerCountryRoutes(rg *gin.RouterGroup, countryService portssvc.CountrySvcFacade) {
	h := newCountryHandler(countryService)

	countries := rg.Group("/countries")
	{
		countries.POST("", h.createCountry)
		countries.GET("", h.listCountries)
		countries.GET("/:id", h.getCountryByID)
		countries.PUT("/:id", h.updateCountry)
		countries.DELETE("/:id", h.deleteCountry)
	}
}

// createCountry godoc
// @Summary Create a new country
// @Tags countries
// @Accept json
// @Produce json
// @Param country body dto.CreateCountryRequest true "Country details"
// @Success 201 {object} dto.CountryResponse
// @Failure 409 {object} ErrorResponse "Country code already exists"
// @Router /countries [post]
func (h *countryHandler) createCountry(c *gin.Context) {
	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	country, err := h.countryService.CreateCountry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create country")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCountryResponse(country))
}

// listCountries godoc
// @Summary List countries
// @Tags countries
// @Produce json
// @Success 200 {array} dto.CountryResponse
// @Router /countries [get]
func (h *countryHandler) listCountries(c *gin.Context) {
	limit, offset := paginationParams(c)
	countries, err := h.countryService.GetCountries(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list countries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}

// getCountryByID godoc
// @Summary Get a country by id
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} ErrorResponse "Country not found"
// @Router /countries/{id} [get]
func (h *countryHandler) getCountryByID(c *gin.Context) {
	country, err := h.countryService.GetCountryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve country")
		return
	}
	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// updateCountry godoc
// @Summary Update a country
// @Tags countries
// @Accept json
// @Produce json
// @Param id path string true "Country ID"
// @Param country body dto.UpdateCountryRequest true "Fields to update"
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} ErrorResponse "Country not found"
// @Router /countries/{id} [put]
func (h *countryHandler) updateCountry(c *gin.Context) {
	var req dto.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	country, err := h.countryService.UpdateCountry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update country")
		return
	}
	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// deleteCountry godoc
// @Summary Delete a country
// @Tags countries
// @Param id path string true "Country ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Country not found"
// @Router /countries/{id} [delete]
func (h *countryHandler) deleteCountry(c *gin.Context) {
	if err := h.countryService.DeleteCountry(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete country")
		return
	}
	c.Status(http.StatusNoContent)
}
