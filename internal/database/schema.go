package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"bizapi/internal/apperr"
)

// Postgres codes for objects that already exist. DDL scripts mostly use
// CREATE ... IF NOT EXISTS, but constraints and extensions can still trip
// duplicate errors on a re-run.
const (
	pgDuplicateObject = "42710"
	pgDuplicateTable  = "42P07"
)

// EnsureSchema executes a DDL script statement by statement so a module can
// provision its own tables on first connection. Statements that fail because
// the target object already exists are skipped; any other failure aborts and
// surfaces as a storage error. Running EnsureSchema twice is a no-op on the
// second run.
func EnsureSchema(ctx context.Context, db *sql.DB, script string, log *zap.Logger) error {
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := db.ExecContext(ctx, stmt); err != nil {
			if isAlreadyExists(err) {
				log.Debug("schema statement skipped, object already exists", zap.Error(err))
				continue
			}
			return apperr.Storage("schema provisioning failed", err)
		}
	}
	return nil
}

// isAlreadyExists reports whether err is Postgres telling us the object being
// created is already there. Checks the typed pgconn error first, then falls
// back to the message for drivers that do not surface a *pgconn.PgError.
func isAlreadyExists(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgDuplicateObject || pgErr.Code == pgDuplicateTable
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists")
}
