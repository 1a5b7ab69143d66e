package worktype

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"bizapi/internal/apperr"
)

// Schema is the DDL the module provisions on first successful connection.
// Attribute definitions cascade with their owning work type.
const Schema = `
CREATE TABLE IF NOT EXISTS work_type (
	id UUID PRIMARY KEY,
	title VARCHAR(100) NOT NULL,
	description TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS work_attribute_type (
	id UUID PRIMARY KEY,
	work_type_id UUID NOT NULL REFERENCES work_type(id) ON DELETE CASCADE,
	name VARCHAR(100) NOT NULL,
	data_type VARCHAR(50) NOT NULL,
	is_required BOOLEAN NOT NULL DEFAULT FALSE,
	is_hidden BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresRepository is the durable implementation of Repository.
type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a PostgresRepository over the shared pool.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List scans work types and their attributes in a single left-outer-join
// pass, then reconstructs the aggregates by grouping rows on the parent id.
// A work type with zero attributes produces one row with NULL attribute
// columns and still appears exactly once.
func (r *PostgresRepository) List(ctx context.Context) ([]WorkType, error) {
	const q = `
		SELECT
			wt.id, wt.title, wt.description, wt.created_at, wt.updated_at,
			wat.id, wat.name, wat.data_type, wat.is_required, wat.is_hidden,
			wat.created_at, wat.updated_at
		FROM work_type wt
		LEFT JOIN work_attribute_type wat ON wt.id = wat.work_type_id
		ORDER BY wt.created_at, wt.id, wat.created_at`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, apperr.Storage("listing work types failed", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*WorkType)
	order := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			wt            WorkType
			attrID        uuid.NullUUID
			attrName      sql.NullString
			attrDataType  sql.NullString
			attrRequired  sql.NullBool
			attrHidden    sql.NullBool
			attrCreatedAt sql.NullTime
			attrUpdatedAt sql.NullTime
		)
		err := rows.Scan(
			&wt.ID, &wt.Title, &wt.Description, &wt.CreatedAt, &wt.UpdatedAt,
			&attrID, &attrName, &attrDataType, &attrRequired, &attrHidden,
			&attrCreatedAt, &attrUpdatedAt,
		)
		if err != nil {
			return nil, apperr.Storage("scanning work type row failed", err)
		}

		entry, ok := byID[wt.ID]
		if !ok {
			wt.Attributes = make([]WorkAttributeType, 0)
			byID[wt.ID] = &wt
			order = append(order, wt.ID)
			entry = &wt
		}

		if !attrID.Valid {
			continue
		}
		dataType, err := ParseDataType(attrDataType.String)
		if err != nil {
			return nil, apperr.Storage("stored data type is invalid", err)
		}
		entry.Attributes = append(entry.Attributes, WorkAttributeType{
			ID:         attrID.UUID,
			Name:       attrName.String,
			DataType:   dataType,
			IsRequired: attrRequired.Bool,
			IsHidden:   attrHidden.Bool,
			CreatedAt:  attrCreatedAt.Time,
			UpdatedAt:  attrUpdatedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("listing work types failed", err)
	}

	workTypes := make([]WorkType, 0, len(order))
	for _, id := range order {
		workTypes = append(workTypes, *byID[id])
	}
	return workTypes, nil
}

// Create inserts the parent row and every attribute row in one transaction;
// any failure rolls the whole aggregate back.
func (r *PostgresRepository) Create(ctx context.Context, req CreateRequest) (*WorkType, error) {
	if req.Title == "" {
		return nil, apperr.Validation("title is required")
	}

	wt := NewFromRequest(req)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Storage("beginning transaction failed", err)
	}
	defer tx.Rollback()

	const insertWorkType = `
		INSERT INTO work_type (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.ExecContext(ctx, insertWorkType,
		wt.ID, wt.Title, wt.Description, wt.CreatedAt, wt.UpdatedAt,
	)
	if err != nil {
		return nil, apperr.Storage("inserting work type failed", err)
	}

	const insertAttribute = `
		INSERT INTO work_attribute_type (id, work_type_id, name, data_type, is_required, is_hidden, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, att := range wt.Attributes {
		_, err = tx.ExecContext(ctx, insertAttribute,
			att.ID, wt.ID, att.Name, att.DataType.String(),
			att.IsRequired, att.IsHidden, att.CreatedAt, att.UpdatedAt,
		)
		if err != nil {
			return nil, apperr.Storage("inserting work attribute type failed", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Storage("committing work type failed", err)
	}
	return &wt, nil
}
