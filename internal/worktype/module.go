package worktype

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"bizapi/internal/module"
)

// Module binds the work-type family to one repository implementation and
// exposes its routes.
type Module struct {
	repo Repository
}

var _ module.Module = (*Module)(nil)

// NewModule constructs the work-type module under the same backend-selection
// policy as every other module.
func NewModule(ctx context.Context, env module.Env) (*Module, error) {
	backend, err := module.SelectBackend(ctx, env, "worktypes", Schema)
	if err != nil {
		return nil, err
	}

	var repo Repository
	if backend == module.BackendPostgres {
		repo = NewPostgresRepository(env.DB)
	} else {
		repo = NewMemoryRepository()
	}
	return &Module{repo: repo}, nil
}

func (m *Module) Name() string {
	return "worktypes"
}

func (m *Module) Routes() []module.Route {
	return []module.Route{
		{Method: fiber.MethodGet, Path: "/worktypes", Handler: ListWorkTypes(m.repo)},
		{Method: fiber.MethodPost, Path: "/worktypes", Handler: CreateWorkType(m.repo)},
	}
}
