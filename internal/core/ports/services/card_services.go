package services

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	"github.com/datum-redsoft/expense-backend/internal/dto"
)

// CardSvcFacade defines the business operations for cards and the
// month-grouped expense aggregation built on top of them.
type CardSvcFacade interface {
	CreateCard(ctx context.Context, req dto.CreateCardRequest) (*domain.Card, error)
	GetCardByID(ctx context.Context, cardID string) (*domain.Card, error)
	GetCards(ctx context.Context, limit int, offset int) ([]domain.Card, error)
	GetCardsByUserID(ctx context.Context, userID string) ([]domain.Card, error)
	UpdateCard(ctx context.Context, cardID string, req dto.UpdateCardRequest) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID string) error

	// GetExpensesByCard returns the card's expenses grouped by calendar
	// month, newest month first.
	GetExpensesByCard(ctx context.Context, cardID string) ([]domain.ExpenseGroup, error)

	// ApproveExpenseGroup transitions the card's DRAFT invoices in the month
	// named by a "<SpanishMonth> <year>" label to PROCESSED and returns how
	// many invoices changed.
	ApproveExpenseGroup(ctx context.Context, cardID string, monthYear string) (int, error)
}
