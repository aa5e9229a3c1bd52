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

type PgxCountryRepository struct {
	db *pgxpool.Pool
}

func newPgxCountryRepository(db *pgxpool.Pool) portsrepo.CountryRepositoryFacade {
	return &PgxCountryRepository{db: db}
}

var _ portsrepo.CountryRepositoryFacade = (*PgxCountryRepository)(nil)

func (r *PgxCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	query := `
        INSERT INTO countries (country_id, name, code, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		country.CountryID,
		country.Name,
		country.Code,
		country.CreatedAt,
		country.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: country code %s", apperrors.ErrDuplicate, country.Code)
		}
		return fmt.Errorf("failed to save country: %w", err)
	}
	return nil
}

func (r *PgxCountryRepository) FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	query := `
		SELECT country_id, name, code, created_at, updated_at
		FROM countries
		WHERE country_id = $1;
	`
	var country domain.Country
	err := r.db.QueryRow(ctx, query, countryID).Scan(
		&country.CountryID,
		&country.Name,
		&country.Code,
		&country.CreatedAt,
		&country.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country by ID %s: %w", countryID, err)
	}
	return &country, nil
}

func (r *PgxCountryRepository) FindCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	query := `
		SELECT country_id, name, code, created_at, updated_at
		FROM countries
		WHERE code = $1;
	`
	var country domain.Country
	err := r.db.QueryRow(ctx, query, code).Scan(
		&country.CountryID,
		&country.Name,
		&country.Code,
		&country.CreatedAt,
		&country.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country by code %s: %w", code, err)
	}
	return &country, nil
}

func (r *PgxCountryRepository) FindCountries(ctx context.Context, limit int, offset int) ([]domain.Country, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT country_id, name, code, created_at, updated_at
		FROM countries
		ORDER BY name ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var country domain.Country
		if err := rows.Scan(
			&country.CountryID,
			&country.Name,
			&country.Code,
			&country.CreatedAt,
			&country.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan country row: %w", err)
		}
		countries = append(countries, country)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country rows: %w", err)
	}
	return countries, nil
}

func (r *PgxCountryRepository) UpdateCountry(ctx context.Context, country domain.Country) error {
	query := `
		UPDATE countries
		SET name = $2, code = $3, updated_at = $4
		WHERE country_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		country.CountryID,
		country.Name,
		country.Code,
		country.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: country code %s", apperrors.ErrDuplicate, country.Code)
		}
		return fmt.Errorf("failed to update country %s: %w", country.CountryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCountryRepository) DeleteCountry(ctx context.Context, countryID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM countries WHERE country_id = $1;`, countryID)
	if err != nil {
		return fmt.Errorf("failed to delete country %s: %w", countryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
