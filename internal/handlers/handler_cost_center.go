package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type costCenterHandler struct {
	costCenterService portssvc.CostCenterSvcFacade
}

func newCostCenterHandler(s portssvc.CostCenterSvcFacade) *costCenterHandler {
	return &costCenterHandler{costCenterService: s}
}

func registerCostCenterRoutes(rg *gin.RouterGroup, costCenterService portssvc.CostCenterSvcFacade) {
	h := newCostCenterHandler(costCenterService)

	costCenters := rg.Group("/cost-centers")
	{
		costCenters.POST("", h.createCostCenter)
		costCenters.GET("", h.listCostCenters)
		costCenters.GET("/:id", h.getCostCenterByID)
		costCenters.PUT("/:id", h.updateCostCenter)
		costCenters.DELETE("/:id", h.deleteCostCenter)
	}
}

// createCostCenter godoc
// @Summary Create a new cost center
// @Tags cost-centers
// @Accept json
// @Produce json
// @Param costCenter body dto.CreateCostCenterRequest true "Cost center details"
// @Success 201 {object} dto.CostCenterResponse
// @Failure 409 {object} ErrorResponse "Cost center code already exists"
// @Router /cost-centers [post]
func (h *costCenterHandler) createCostCenter(c *gin.Context) {
	var req dto.CreateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	costCenter, err := h.costCenterService.CreateCostCenter(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create cost center")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCostCenterResponse(costCenter))
}

// listCostCenters godoc
// @Summary List cost centers
// @Tags cost-centers
// @Produce json
// @Success 200 {array} dto.CostCenterResponse
// @Router /cost-centers [get]
func (h *costCenterHandler) listCostCenters(c *gin.Context) {
	limit, offset := paginationParams(c)
	costCenters, err := h.costCenterService.GetCostCenters(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list cost centers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCostCenterResponse(costCenters))
}

// getCostCenterByID godoc
// @Summary Get a cost center by id
// @Tags cost-centers
// @Produce json
// @Param id path string true "Cost center ID"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 404 {object} ErrorResponse "Cost center not found"
// @Router /cost-centers/{id} [get]
func (h *costCenterHandler) getCostCenterByID(c *gin.Context) {
	costCenter, err := h.costCenterService.GetCostCenterByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve cost center")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponse(costCenter))
}

// updateCostCenter godoc
// @Summary Update a cost center
// @Tags cost-centers
// @Accept json
// @Produce json
// @Param id path string true "Cost center ID"
// @Param costCenter body dto.UpdateCostCenterRequest true "Fields to update"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 404 {object} ErrorResponse "Cost center not found"
// @Router /cost-centers/{id} [put]
func (h *costCenterHandler) updateCostCenter(c *gin.Context) {
	var req dto.UpdateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	costCenter, err := h.costCenterService.UpdateCostCenter(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update cost center")
		return
	}
	c.JSON(http.StatusOK, dto.ToCostCenterResponse(costCenter))
}

// deleteCostCenter godoc
// @Summary Delete a cost center
// @Tags cost-centers
// @Param id path string true "Cost center ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Cost center not found"
// @Router /cost-centers/{id} [delete]
func (h *costCenterHandler) deleteCostCenter(c *gin.Context) {
	if err := h.costCenterService.DeleteCostCenter(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete cost center")
		return
	}
	c.Status(http.StatusNoContent)
}
