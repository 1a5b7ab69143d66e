package module

// Package module defines the contract every business capability implements and
// the registry that assembles capabilities into one served application. A
// module binds one entity family to exactly one repository backend, chosen at
// construction time, and exposes its route set; the composition root knows
// nothing beyond this contract.

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bizapi/internal/config"
)

// Route binds one path+verb pair to a handler.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

// Module is a self-contained unit owning one entity family, its bound
// repository, and its routes. Once constructed, a module never rebinds its
// backend.
type Module interface {
	// Name identifies the module in logs and initialization errors.
	Name() string
	// Routes returns the module's route set. Handlers close over the bound
	// repository.
	Routes() []Route
}

// Backend identifies which repository implementation a module bound.
type Backend int

const (
	BackendMemory Backend = iota
	BackendPostgres
)

func (b Backend) String() string {
	if b == BackendPostgres {
		return "postgres"
	}
	return "memory"
}

// Env carries the shared collaborators every module constructor consumes: the
// shared connection-pool handle (nil when the durable store is unconfigured or
// unreachable), the uniform fallback policy, and the logger.
type Env struct {
	DB     *sql.DB
	Policy config.FallbackPolicy
	Log    *zap.Logger
}
