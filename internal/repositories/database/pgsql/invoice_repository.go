package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/datum-redsoft/expense-backend/internal/apperrors"
	"github.com/datum-redsoft/expense-backend/internal/core/domain"
	portsrepo "github.com/datum-redsoft/expense-backend/internal/core/ports/repositories"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// dbExecer is satisfied by both pgxpool.Pool and pgx.Tx, so the insert
// helpers can run standalone or inside the aggregate transactions.
type dbExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const invoiceColumns = `invoice_id, user_id, card_id, company_id, country_id, path, file_name, status, created_at, updated_at`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.UserID,
		&inv.CardID,
		&inv.CompanyID,
		&inv.CountryID,
		&inv.Path,
		&inv.FileName,
		&inv.Status,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	return inv, err
}

const invoiceFieldColumns = `field_id, invoice_id, vendor_name, invoice_date, total_amount, currency,
		concept, category_id, cost_center_id, client_visited, notes, created_at, updated_at`

func scanInvoiceField(row pgx.Row) (domain.InvoiceField, error) {
	var f domain.InvoiceField
	err := row.Scan(
		&f.FieldID,
		&f.InvoiceID,
		&f.VendorName,
		&f.InvoiceDate,
		&f.TotalAmount,
		&f.Currency,
		&f.Concept,
		&f.CategoryID,
		&f.CostCenterID,
		&f.ClientVisited,
		&f.Notes,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}

func insertInvoice(ctx context.Context, db dbExecer, invoice domain.Invoice) error {
	query := `
        INSERT INTO invoices (` + invoiceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := db.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.UserID,
		invoice.CardID,
		invoice.CompanyID,
		invoice.CountryID,
		invoice.Path,
		invoice.FileName,
		invoice.Status,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice %s", apperrors.ErrDuplicate, invoice.InvoiceID)
		}
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func insertInvoiceField(ctx context.Context, db dbExecer, field domain.InvoiceField) error {
	query := `
        INSERT INTO invoice_fields (` + invoiceFieldColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := db.Exec(ctx, query,
		field.FieldID,
		field.InvoiceID,
		field.VendorName,
		field.InvoiceDate,
		field.TotalAmount,
		field.Currency,
		field.Concept,
		field.CategoryID,
		field.CostCenterID,
		field.ClientVisited,
		field.Notes,
		field.CreatedAt,
		field.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice %s already has fields", apperrors.ErrDuplicate, field.InvoiceID)
		}
		return fmt.Errorf("failed to save invoice field: %w", err)
	}
	return nil
}

// updateInvoiceField updates the user-editable attributes of a field row.
// The invoice binding never changes.
func updateInvoiceField(ctx context.Context, db dbExecer, field domain.InvoiceField) (pgconn.CommandTag, error) {
	query := `
		UPDATE invoice_fields
		SET vendor_name = $2, invoice_date = $3, total_amount = $4, currency = $5,
		    concept = $6, category_id = $7, cost_center_id = $8, client_visited = $9,
		    notes = $10, updated_at = $11
		WHERE field_id = $1;
	`
	return db.Exec(ctx, query,
		field.FieldID,
		field.VendorName,
		field.InvoiceDate,
		field.TotalAmount,
		field.Currency,
		field.Concept,
		field.CategoryID,
		field.CostCenterID,
		field.ClientVisited,
		field.Notes,
		field.UpdatedAt,
	)
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return insertInvoice(ctx, r.Pool, invoice)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func (r *PgxInvoiceRepository) FindInvoicesByUserID(ctx context.Context, userID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for user %s: %w", userID, err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func (r *PgxInvoiceRepository) FindInvoicesByCardID(ctx context.Context, cardID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE card_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for card %s: %w", cardID, err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func (r *PgxInvoiceRepository) FindInvoicesByStatus(ctx context.Context, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE status = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices with status %s: %w", status, err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func collectInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices
		SET user_id = $2, card_id = $3, company_id = $4, country_id = $5,
		    path = $6, file_name = $7, status = $8, updated_at = $9
		WHERE invoice_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.UserID,
		invoice.CardID,
		invoice.CompanyID,
		invoice.CountryID,
		invoice.Path,
		invoice.FileName,
		invoice.Status,
		invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedAt time.Time) error {
	query := `UPDATE invoices SET status = $2, updated_at = $3 WHERE invoice_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, invoiceID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s status: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) SaveInvoiceField(ctx context.Context, field domain.InvoiceField) error {
	return insertInvoiceField(ctx, r.Pool, field)
}

func (r *PgxInvoiceRepository) FindInvoiceFieldByID(ctx context.Context, fieldID string) (*domain.InvoiceField, error) {
	query := `SELECT ` + invoiceFieldColumns + ` FROM invoice_fields WHERE field_id = $1;`
	field, err := scanInvoiceField(r.Pool.QueryRow(ctx, query, fieldID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice field by ID %s: %w", fieldID, err)
	}
	return &field, nil
}

func (r *PgxInvoiceRepository) FindInvoiceFieldByInvoiceID(ctx context.Context, invoiceID string) (*domain.InvoiceField, error) {
	query := `SELECT ` + invoiceFieldColumns + ` FROM invoice_fields WHERE invoice_id = $1;`
	field, err := scanInvoiceField(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice field for invoice %s: %w", invoiceID, err)
	}
	return &field, nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceField(ctx context.Context, field domain.InvoiceField) error {
	cmdTag, err := updateInvoiceField(ctx, r.Pool, field)
	if err != nil {
		return fmt.Errorf("failed to update invoice field %s: %w", field.FieldID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoiceField(ctx context.Context, fieldID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoice_fields WHERE field_id = $1;`, fieldID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice field %s: %w", fieldID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CreateInvoiceWithField inserts the invoice and its field in one transaction.
func (r *PgxInvoiceRepository) CreateInvoiceWithField(ctx context.Context, invoice domain.Invoice, field domain.InvoiceField) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	if err := insertInvoice(ctx, tx, invoice); err != nil {
		return err
	}
	if err := insertInvoiceField(ctx, tx, field); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoiceWithField updates the editable parts of both rows in one
// transaction. On the invoice side only the country may change; path, file
// name, card binding and status move through their own dedicated operations.
func (r *PgxInvoiceRepository) UpdateInvoiceWithField(ctx context.Context, invoice domain.Invoice, field domain.InvoiceField) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	invoiceQuery := `
		UPDATE invoices
		SET country_id = $2, updated_at = $3
		WHERE invoice_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, invoiceQuery,
		invoice.InvoiceID,
		invoice.CountryID,
		invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	cmdTag, err = updateInvoiceField(ctx, tx, field)
	if err != nil {
		return fmt.Errorf("failed to update invoice field %s: %w", field.FieldID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// ApproveDraftInvoicesInMonth approves one card's month in a single
// conditional update. The status predicate makes concurrent approvals safe:
// an invoice already moved out of DRAFT is simply not counted again.
func (r *PgxInvoiceRepository) ApproveDraftInvoicesInMonth(ctx context.Context, cardID string, year int, month time.Month, updatedAt time.Time) (int, error) {
	query := `
		UPDATE invoices i
		SET status = $1, updated_at = $2
		FROM invoice_fields f
		WHERE f.invoice_id = i.invoice_id
		  AND i.card_id = $3
		  AND i.status = $4
		  AND EXTRACT(YEAR FROM f.invoice_date) = $5
		  AND EXTRACT(MONTH FROM f.invoice_date) = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		domain.InvoiceStatusProcessed,
		updatedAt,
		cardID,
		domain.InvoiceStatusDraft,
		year,
		int(month),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to approve invoices for card %s in %d-%02d: %w", cardID, year, int(month), err)
	}
	return int(cmdTag.RowsAffected()), nil
}
