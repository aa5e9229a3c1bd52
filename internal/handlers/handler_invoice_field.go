package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type invoiceFieldHandler struct {
	fieldService portssvc.InvoiceFieldSvcFacade
}

func newInvoiceFieldHandler(s portssvc.InvoiceFieldSvcFacade) *invoiceFieldHandler {
	return &invoiceFieldHandler{fieldService: s}
}

func registerInvoiceFieldRoutes(rg *gin.RouterGroup, fieldService portssvc.InvoiceFieldSvcFacade) {
	h := newInvoiceFieldHandler(fieldService)

	fields := rg.Group("/invoice-fields")
	{
		fields.POST("", h.createInvoiceField)
		fields.GET("/:id", h.getInvoiceFieldByID)
		fields.PUT("/:id", h.updateInvoiceField)
		fields.DELETE("/:id", h.deleteInvoiceField)
	}
	rg.GET("/invoices/:id/fields", h.getInvoiceFieldByInvoice)
}

// createInvoiceField godoc
// @Summary Attach extracted fields to an invoice
// @Tags invoice-fields
// @Accept json
// @Produce json
// @Param field body dto.CreateInvoiceFieldRequest true "Field details"
// @Success 201 {object} dto.InvoiceFieldResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice already has fields"
// @Router /invoice-fields [post]
func (h *invoiceFieldHandler) createInvoiceField(c *gin.Context) {
	var req dto.CreateInvoiceFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	field, err := h.fieldService.CreateInvoiceField(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create invoice field")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceFieldResponse(field))
}

// getInvoiceFieldByID godoc
// @Summary Get an invoice field row by id
// @Tags invoice-fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} dto.InvoiceFieldResponse
// @Failure 404 {object} ErrorResponse "Field not found"
// @Router /invoice-fields/{id} [get]
func (h *invoiceFieldHandler) getInvoiceFieldByID(c *gin.Context) {
	field, err := h.fieldService.GetInvoiceFieldByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve invoice field")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceFieldResponse(field))
}

// getInvoiceFieldByInvoice godoc
// @Summary Get the field row attached to an invoice
// @Tags invoice-fields
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceFieldResponse
// @Failure 404 {object} ErrorResponse "Invoice has no fields"
// @Router /invoices/{id}/fields [get]
func (h *invoiceFieldHandler) getInvoiceFieldByInvoice(c *gin.Context) {
	field, err := h.fieldService.GetInvoiceFieldByInvoiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve invoice field")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceFieldResponse(field))
}

// updateInvoiceField godoc
// @Summary Update an invoice field row
// @Tags invoice-fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param field body dto.UpdateInvoiceFieldRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceFieldResponse
// @Failure 404 {object} ErrorResponse "Field not found"
// @Router /invoice-fields/{id} [put]
func (h *invoiceFieldHandler) updateInvoiceField(c *gin.Context) {
	var req dto.UpdateInvoiceFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	field, err := h.fieldService.UpdateInvoiceField(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update invoice field")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceFieldResponse(field))
}

// deleteInvoiceField godoc
// @Summary Delete an invoice field row
// @Tags invoice-fields
// @Param id path string true "Field ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Field not found"
// @Router /invoice-fields/{id} [delete]
func (h *invoiceFieldHandler) deleteInvoiceField(c *gin.Context) {
	if err := h.fieldService.DeleteInvoiceField(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete invoice field")
		return
	}
	c.Status(http.StatusNoContent)
}
