package repositories

import (
	"context"

	"github.com/datum-redsoft/expense-backend/internal/core/domain"
)

// CardRepositoryFacade defines persistence operations for cards, including
// the denormalized expense join consumed by the aggregation engine.
type CardRepositoryFacade interface {
	SaveCard(ctx context.Context, card domain.Card) error
	FindCardByID(ctx context.Context, cardID string) (*domain.Card, error)
	ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error)
	FindCards(ctx context.Context, limit int, offset int) ([]domain.Card, error)
	FindCardsByUserID(ctx context.Context, userID string) ([]domain.Card, error)
	UpdateCard(ctx context.Context, card domain.Card) error
	DeleteCard(ctx context.Context, cardID string) error

	// FindExpenseRowsByCardID joins every invoice + invoice-field pair for the
	// card with category and cost-center names, newest invoice date first.
	FindExpenseRowsByCardID(ctx context.Context, cardID string) ([]domain.Expense, error)
}
