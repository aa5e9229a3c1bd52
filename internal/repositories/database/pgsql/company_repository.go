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

type PgxCompanyRepository struct {
	db *pgxpool.Pool
}

func newPgxCompanyRepository(db *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{db: db}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
        INSERT INTO companies (company_id, name, tax_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.TaxID,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company name %s", apperrors.ErrDuplicate, company.Name)
		}
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, tax_id, created_at, updated_at
		FROM companies
		WHERE company_id = $1;
	`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&company.CompanyID,
		&company.Name,
		&company.TaxID,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by ID %s: %w", companyID, err)
	}
	return &company, nil
}

func (r *PgxCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, tax_id, created_at, updated_at
		FROM companies
		WHERE name = $1;
	`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, name).Scan(
		&company.CompanyID,
		&company.Name,
		&company.TaxID,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by name: %w", err)
	}
	return &company, nil
}

func (r *PgxCompanyRepository) FindCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT company_id, name, tax_id, created_at, updated_at
		FROM companies
		ORDER BY name ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.CompanyID,
			&company.Name,
			&company.TaxID,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}
	return companies, nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies
		SET name = $2, tax_id = $3, updated_at = $4
		WHERE company_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.TaxID,
		company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company name %s", apperrors.ErrDuplicate, company.Name)
		}
		return fmt.Errorf("failed to update company %s: %w", company.CompanyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE company_id = $1;`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", companyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
