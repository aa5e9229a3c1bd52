package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(s portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: s}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.POST("/complete", h.createCompleteInvoice)
		invoices.GET("/:id", h.getInvoiceByID)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.PATCH("/:id/status", h.updateInvoiceStatus)
		invoices.DELETE("/:id", h.deleteInvoice)
		invoices.GET("/:id/complete", h.getCompleteInvoice)
		invoices.PUT("/:id/complete", h.updateCompleteInvoice)
	}
	rg.GET("/users/:id/invoices", h.getInvoicesByUser)
	rg.GET("/cards/:id/invoices", h.getInvoicesByCard)
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates the invoice record. New invoices always start in
// @Description DRAFT regardless of the payload.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse "Referenced entity not found"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists invoices, optionally filtered by processing status via
// @Description the status query parameter.
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status (DRAFT, PROCESSED, ...)"
// @Success 200 {array} dto.InvoiceResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		invoices, err := h.invoiceService.GetInvoicesByStatus(c.Request.Context(), status)
		if err != nil {
			respondServiceError(c, err, "Failed to list invoices")
			return
		}
		c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
		return
	}

	limit, offset := paginationParams(c)
	invoices, err := h.invoiceService.GetInvoices(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// getInvoiceByID godoc
// @Summary Get an invoice by id
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// getInvoicesByUser godoc
// @Summary List the invoices uploaded by a user
// @Tags invoices
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} dto.InvoiceResponse
// @Router /users/{id}/invoices [get]
func (h *invoiceHandler) getInvoicesByUser(c *gin.Context) {
	invoices, err := h.invoiceService.GetInvoicesByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list user invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// getInvoicesByCard godoc
// @Summary List the invoices charged to a card
// @Tags invoices
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {array} dto.InvoiceResponse
// @Router /cards/{id}/invoices [get]
func (h *invoiceHandler) getInvoicesByCard(c *gin.Context) {
	invoices, err := h.invoiceService.GetInvoicesByCardID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list card invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoiceStatus godoc
// @Summary Update an invoice's processing status
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param status body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Unknown status value"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id}/status [patch]
func (h *invoiceHandler) updateInvoiceStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update invoice status")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// createCompleteInvoice godoc
// @Summary Create an invoice together with its extracted fields
// @Description Persists the invoice record and the extracted field row in a
// @Description single transaction. The invoice starts in DRAFT.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateCompleteInvoiceRequest true "Invoice and field details"
// @Success 201 {object} dto.CompleteInvoiceResponse
// @Failure 404 {object} ErrorResponse "Referenced entity not found"
// @Router /invoices/complete [post]
func (h *invoiceHandler) createCompleteInvoice(c *gin.Context) {
	var req dto.CreateCompleteInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	complete, err := h.invoiceService.CreateCompleteInvoice(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, complete)
}

// getCompleteInvoice godoc
// @Summary Get an invoice together with its extracted fields
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.CompleteInvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id}/complete [get]
func (h *invoiceHandler) getCompleteInvoice(c *gin.Context) {
	complete, err := h.invoiceService.GetCompleteInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, complete)
}

// updateCompleteInvoice godoc
// @Summary Update an invoice and its extracted fields
// @Description Updates the user-editable parts of the aggregate in a single
// @Description transaction. The storage path, file name, card binding and
// @Description status are never modified here.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.UpdateCompleteInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.CompleteInvoiceResponse
// @Failure 400 {object} ErrorResponse "Field does not belong to the invoice"
// @Failure 404 {object} ErrorResponse "Invoice or field not found"
// @Router /invoices/{id}/complete [put]
func (h *invoiceHandler) updateCompleteInvoice(c *gin.Context) {
	var req dto.UpdateCompleteInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	complete, err := h.invoiceService.UpdateCompleteInvoice(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, complete)
}
