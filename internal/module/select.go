package module

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"bizapi/internal/config"
	"bizapi/internal/database"
)

// SelectBackend runs the uniform backend-selection policy for one module: try
// the durable backend first (provision its schema), and on unavailability
// either degrade to the in-memory backend with a warning or fail module
// initialization, per the configured policy. The choice is made once; the
// caller binds the matching repository for the rest of the process lifetime.
func SelectBackend(ctx context.Context, env Env, name, schema string) (Backend, error) {
	log := env.Log.With(zap.String("module", name))

	err := ensureDurable(ctx, env.DB, schema, log)
	if err == nil {
		log.Info("module bound to durable backend", zap.Stringer("backend", BackendPostgres))
		return BackendPostgres, nil
	}

	if env.Policy == config.FailOnUnavailable {
		return BackendMemory, fmt.Errorf("module %s: durable backend unavailable: %w", name, err)
	}

	log.Warn("durable backend unavailable, falling back to in-memory repository",
		zap.Error(err),
	)
	return BackendMemory, nil
}

func ensureDurable(ctx context.Context, db *sql.DB, schema string, log *zap.Logger) error {
	if db == nil {
		return fmt.Errorf("no database configured")
	}
	return database.EnsureSchema(ctx, db, schema, log)
}
