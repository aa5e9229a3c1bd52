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

type PgxCostCenterRepository struct {
	db *pgxpool.Pool
}

func newPgxCostCenterRepository(db *pgxpool.Pool) portsrepo.CostCenterRepositoryFacade {
	return &PgxCostCenterRepository{db: db}
}

var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

func (r *PgxCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	query := `
        INSERT INTO cost_centers (cost_center_id, name, code, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		costCenter.CostCenterID,
		costCenter.Name,
		costCenter.Code,
		costCenter.CreatedAt,
		costCenter.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cost center code %s", apperrors.ErrDuplicate, costCenter.Code)
		}
		return fmt.Errorf("failed to save cost center: %w", err)
	}
	return nil
}

func (r *PgxCostCenterRepository) FindCostCenterByID(ctx context.Context, costCenterID string) (*domain.CostCenter, error) {
	query := `
		SELECT cost_center_id, name, code, created_at, updated_at
		FROM cost_centers
		WHERE cost_center_id = $1;
	`
	var costCenter domain.CostCenter
	err := r.db.QueryRow(ctx, query, costCenterID).Scan(
		&costCenter.CostCenterID,
		&costCenter.Name,
		&costCenter.Code,
		&costCenter.CreatedAt,
		&costCenter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cost center by ID %s: %w", costCenterID, err)
	}
	return &costCenter, nil
}

func (r *PgxCostCenterRepository) FindCostCenterByCode(ctx context.Context, code string) (*domain.CostCenter, error) {
	query := `
		SELECT cost_center_id, name, code, created_at, updated_at
		FROM cost_centers
		WHERE code = $1;
	`
	var costCenter domain.CostCenter
	err := r.db.QueryRow(ctx, query, code).Scan(
		&costCenter.CostCenterID,
		&costCenter.Name,
		&costCenter.Code,
		&costCenter.CreatedAt,
		&costCenter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cost center by code %s: %w", code, err)
	}
	return &costCenter, nil
}

func (r *PgxCostCenterRepository) FindCostCenters(ctx context.Context, limit int, offset int) ([]domain.CostCenter, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT cost_center_id, name, code, created_at, updated_at
		FROM cost_centers
		ORDER BY code ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	defer rows.Close()

	costCenters := make([]domain.CostCenter, 0)
	for rows.Next() {
		var costCenter domain.CostCenter
		if err := rows.Scan(
			&costCenter.CostCenterID,
			&costCenter.Name,
			&costCenter.Code,
			&costCenter.CreatedAt,
			&costCenter.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cost center row: %w", err)
		}
		costCenters = append(costCenters, costCenter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost center rows: %w", err)
	}
	return costCenters, nil
}

func (r *PgxCostCenterRepository) UpdateCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	query := `
		UPDATE cost_centers
		SET name = $2, code = $3, updated_at = $4
		WHERE cost_center_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		costCenter.CostCenterID,
		costCenter.Name,
		costCenter.Code,
		costCenter.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cost center code %s", apperrors.ErrDuplicate, costCenter.Code)
		}
		return fmt.Errorf("failed to update cost center %s: %w", costCenter.CostCenterID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCostCenterRepository) DeleteCostCenter(ctx context.Context, costCenterID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cost_centers WHERE cost_center_id = $1;`, costCenterID)
	if err != nil {
		return fmt.Errorf("failed to delete cost center %s: %w", costCenterID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
