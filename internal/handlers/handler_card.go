package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/datum-redsoft/expense-backend/internal/core/ports/services"
	"github.com/datum-redsoft/expense-backend/internal/dto"
	"github.com/datum-redsoft/expense-backend/internal/middleware"
)

type cardHandler struct {
	cardService portssvc.CardSvcFacade
}

func newCardHandler(s portssvc.CardSvcFacade) *cardHandler {
	return &cardHandler{cardService: s}
}

func registerCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade) {
	h := newCardHandler(cardService)

	cards := rg.Group("/cards")
	{
		cards.POST("", h.createCard)
		cards.GET("", h.listCards)
		cards.GET("/:id", h.getCardByID)
		cards.PUT("/:id", h.updateCard)
		cards.DELETE("/:id", h.deleteCard)
		cards.GET("/:id/expenses", h.getCardExpenses)
		cards.PATCH("/:id/expenses/approve", h.approveExpenseGroup)
	}
	rg.GET("/users/:id/cards", h.getCardsByUser)
}

// createCard godoc
// @Summary Register a new corporate card
// @Description Accepts the raw card number once and stores only its masked
// @Description form alongside the card metadata.
// @Tags cards
// @Accept json
// @Produce json
// @Param card body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 404 {object} ErrorResponse "Owner or company not found"
// @Failure 409 {object} ErrorResponse "Card number already registered"
// @Router /cards [post]
func (h *cardHandler) createCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create card")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// listCards godoc
// @Summary List cards
// @Tags cards
// @Produce json
// @Success 200 {array} dto.CardResponse
// @Router /cards [get]
func (h *cardHandler) listCards(c *gin.Context) {
	limit, offset := paginationParams(c)
	cards, err := h.cardService.GetCards(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list cards")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCardResponse(cards))
}

// getCardByID godoc
// @Summary Get a card by id
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} dto.CardResponse
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /cards/{id} [get]
func (h *cardHandler) getCardByID(c *gin.Context) {
	card, err := h.cardService.GetCardByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve card")
		return
	}
	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// getCardsByUser godoc
// @Summary List the cards owned by a user
// @Tags cards
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} dto.CardResponse
// @Router /users/{id}/cards [get]
func (h *cardHandler) getCardsByUser(c *gin.Context) {
	cards, err := h.cardService.GetCardsByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list user cards")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCardResponse(cards))
}

// updateCard godoc
// @Summary Update a card
// @Description The card number is immutable and never part of the update
// @Description payload.
// @Tags cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param card body dto.UpdateCardRequest true "Fields to update"
// @Success 200 {object} dto.CardResponse
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /cards/{id} [put]
func (h *cardHandler) updateCard(c *gin.Context) {
	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format: "+err.Error(), nil)
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update card")
		return
	}
	c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// deleteCard godoc
// @Summary Delete a card
// @Tags cards
// @Param id path string true "Card ID"
// @Success 204 "No content"
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /cards/{id} [delete]
func (h *cardHandler) deleteCard(c *gin.Context) {
	if err := h.cardService.DeleteCard(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete card")
		return
	}
	c.Status(http.StatusNoContent)
}

// getCardExpenses godoc
// @Summary Get a card's expenses grouped by month
// @Description Returns the card's invoices rolled up into monthly groups,
// @Description newest month first. Each group carries its Spanish month
// @Description label, total amount, row count and approval status.
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {array} domain.ExpenseGroup
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /cards/{id}/expenses [get]
func (h *cardHandler) getCardExpenses(c *gin.Context) {
	groups, err := h.cardService.GetExpensesByCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve card expenses")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// approveExpenseGroup godoc
// @Summary Approve a month of expenses for a card
// @Description Transitions every DRAFT invoice of the card in the month named
// @Description by the monthYear label to PROCESSED. Invoices that already
// @Description left DRAFT are skipped.
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Param monthYear query string true "Month label, e.g. Diciembre 2024"
// @Success 200 {object} dto.ApproveExpenseGroupResponse
// @Failure 400 {object} ErrorResponse "Missing or malformed month label"
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /cards/{id}/expenses/approve [patch]
func (h *cardHandler) approveExpenseGroup(c *gin.Context) {
	monthYear := c.Query("monthYear")
	if monthYear == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter monthYear is required", nil)
		return
	}

	updated, err := h.cardService.ApproveExpenseGroup(c.Request.Context(), c.Param("id"), monthYear)
	if err != nil {
		respondServiceError(c, err, "Failed to approve expense group")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("expense group approved", "cardID", c.Param("id"), "monthYear", monthYear, "updated", updated)

	c.JSON(http.StatusOK, dto.ApproveExpenseGroupResponse{
		Message:      fmt.Sprintf("%d invoices approved for %s", updated, monthYear),
		UpdatedCount: updated,
	})
}
