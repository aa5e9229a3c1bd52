package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	portsrepo "github.com/datum-redsoft/expense-backend/internal/core/ports/repositories"
)

type PgxCardRepository struct {
	db *pgxpool.Pool
}

func newPgxCardRepository(db *pgxpool.Pool) portsrepo.CardRepositoryFacade {
	return &PgxCardRepository{db: db}
}

var _ portsrepo.CardRepositoryFacade = (*PgxCardRepository)(nil)

const cardColumns = `card_id, card_number, masked_card_number, holder_name, card_type,
		expiration_date, issuer_bank, credit_limit, status, description,
		user_id, company_id, created_at, updated_at`

func scanCard(row pgx.Row) (domain.Card, error) {
	var card domain.Card
	err := row.Scan(
		&card.CardID,
		&card.CardNumber,
		&card.MaskedCardNumber,
		&card.HolderName,
		&card.CardType,
		&card.ExpirationDate,
		&card.IssuerBank,
		&card.CreditLimit,
		&card.Status,
		&card.Description,
		&card.UserID,
		&card.CompanyID,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	return card, err
}

func (r *PgxCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	query := `
        INSERT INTO cards (` + cardColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		card.CardID,
		card.CardNumber,
		card.MaskedCardNumber,
		card.HolderName,
		card.CardType,
		card.ExpirationDate,
		card.IssuerBank,
		card.CreditLimit,
		card.Status,
		card.Description,
		card.UserID,
		card.CompanyID,
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: card number already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save card: %w", err)
	}
	return nil
}

func (r *PgxCardRepository) FindCardByID(ctx context.Context, cardID string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE card_id = $1;`
	card, err := scanCard(r.db.QueryRow(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card by ID %s: %w", cardID, err)
	}
	return &card, nil
}

func (r *PgxCardRepository) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cards WHERE card_number = $1);`, cardNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check card number existence: %w", err)
	}
	return exists, nil
}

func (r *PgxCardRepository) FindCards(ctx context.Context, limit int, offset int) ([]domain.Card, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + cardColumns + ` FROM cards ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()
	return collectCards(rows)
}

func (r *PgxCardRepository) FindCardsByUserID(ctx context.Context, userID string) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectCards(rows)
}

func collectCards(rows pgx.Rows) ([]domain.Card, error) {
	cards := make([]domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}
	return cards, nil
}

func (r *PgxCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	query := `
		UPDATE cards
		SET holder_name = $2, card_type = $3, expiration_date = $4, issuer_bank = $5,
		    credit_limit = $6, status = $7, description = $8, updated_at = $9
		WHERE card_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		card.CardID,
		card.HolderName,
		card.CardType,
		card.ExpirationDate,
		card.IssuerBank,
		card.CreditLimit,
		card.Status,
		card.Description,
		card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update card %s: %w", card.CardID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCardRepository) DeleteCard(ctx context.Context, cardID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cards WHERE card_id = $1;`, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete card %s: %w", cardID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindExpenseRowsByCardID joins invoices with their extracted fields plus
// category and cost-center names. Only invoices that already have fields
// participate; a draft without extraction is not an expense yet.
func (r *PgxCardRepository) FindExpenseRowsByCardID(ctx context.Context, cardID string) ([]domain.Expense, error) {
	query := `
		SELECT f.field_id, i.invoice_id, f.vendor_name, f.concept,
		       c.name AS category_name, f.invoice_date, f.total_amount, f.currency,
		       f.category_id, f.cost_center_id, cc.name AS cost_center_name,
		       f.client_visited, f.notes, i.status, i.country_id, i.path, i.file_name
		FROM invoices i
		JOIN invoice_fields f ON f.invoice_id = i.invoice_id
		LEFT JOIN categories c ON c.category_id = f.category_id
		LEFT JOIN cost_centers cc ON cc.cost_center_id = f.cost_center_id
		WHERE i.card_id = $1
		ORDER BY f.invoice_date DESC;
	`
	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for card %s: %w", cardID, err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		var exp domain.Expense
		if err := rows.Scan(
			&exp.FieldID,
			&exp.InvoiceID,
			&exp.VendorName,
			&exp.Concept,
			&exp.CategoryName,
			&exp.InvoiceDate,
			&exp.TotalAmount,
			&exp.Currency,
			&exp.CategoryID,
			&exp.CostCenterID,
			&exp.CostCenterName,
			&exp.ClientVisited,
			&exp.Notes,
			&exp.Status,
			&exp.CountryID,
			&exp.Path,
			&exp.FileName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		exp.Icon = domain.ExpenseIcon
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}
