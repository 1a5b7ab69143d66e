package company

import (
	"context"
	"database/sql"
	"errors"

	"bizapi/internal/apperr"
)

// Schema is the DDL the module provisions on first successful connection.
const Schema = `
CREATE TABLE IF NOT EXISTS company (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	cif_number TEXT UNIQUE,
	billing_address TEXT,
	postal_code INTEGER,
	city TEXT,
	province TEXT,
	industry TEXT,
	industry_sub_category TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

const companyColumns = `id, name, cif_number, billing_address, postal_code, city, province, industry, industry_sub_category, created_at, updated_at`

// PostgresRepository is the durable implementation of Repository. All access
// goes through the shared *sql.DB pool, which handles concurrency internally.
type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a PostgresRepository over the shared pool.
// The caller is expected to have run the schema-ensure step already.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, nameFilter string) ([]Company, error) {
	q := `SELECT ` + companyColumns + ` FROM company ORDER BY created_at, id`
	args := []any{}
	if nameFilter != "" {
		q = `SELECT ` + companyColumns + ` FROM company WHERE name ILIKE $1 ORDER BY created_at, id`
		args = append(args, "%"+nameFilter+"%")
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperr.Storage("listing companies failed", err)
	}
	defer rows.Close()

	companies := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := scanCompany(rows.Scan, &c); err != nil {
			return nil, apperr.Storage("scanning company row failed", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("listing companies failed", err)
	}
	return companies, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Company, error) {
	const q = `SELECT ` + companyColumns + ` FROM company WHERE id = $1`

	var c Company
	err := scanCompany(r.db.QueryRowContext(ctx, q, id).Scan, &c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("fetching company failed", err)
	}
	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, req Request) (*Company, error) {
	if req.Name == nil || *req.Name == "" {
		return nil, apperr.Validation("name is required")
	}

	c := NewFromRequest(req)
	if err := r.insert(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, req Request) (*Company, error) {
	// Re-read the current row so absent request fields keep their stored
	// values, then write all columns back.
	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	req.ApplyTo(current)

	const q = `
		UPDATE company
		SET name = $1, cif_number = $2, billing_address = $3, postal_code = $4,
			city = $5, province = $6, industry = $7, industry_sub_category = $8,
			updated_at = $9
		WHERE id = $10`
	_, err = r.db.ExecContext(ctx, q,
		current.Name,
		current.CIFNumber,
		current.BillingAddress,
		current.PostalCode,
		current.City,
		current.Province,
		current.Industry,
		current.IndustrySubCategory,
		current.UpdatedAt,
		id,
	)
	if err != nil {
		return nil, apperr.Storage("updating company failed", err)
	}
	return current, nil
}

func (r *PostgresRepository) Duplicate(ctx context.Context, id string) (*Company, error) {
	original, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, nil
	}

	dup := original.Duplicate()
	if err := r.insert(ctx, dup); err != nil {
		return nil, err
	}
	return &dup, nil
}

func (r *PostgresRepository) insert(ctx context.Context, c Company) error {
	const q = `
		INSERT INTO company (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, q,
		c.ID,
		c.Name,
		c.CIFNumber,
		c.BillingAddress,
		c.PostalCode,
		c.City,
		c.Province,
		c.Industry,
		c.IndustrySubCategory,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return apperr.Storage("inserting company failed", err)
	}
	return nil
}

// scanCompany reads one company row. Nullable columns scan through the
// model's pointer fields directly.
func scanCompany(scan func(dest ...any) error, c *Company) error {
	return scan(
		&c.ID,
		&c.Name,
		&c.CIFNumber,
		&c.BillingAddress,
		&c.PostalCode,
		&c.City,
		&c.Province,
		&c.Industry,
		&c.IndustrySubCategory,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}
