package company

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"bizapi/internal/module"
)

// Module binds the company family to one repository implementation and
// exposes its routes.
type Module struct {
	repo Repository
}

var _ module.Module = (*Module)(nil)

// NewModule constructs the company module, selecting its backend per the
// configured policy: durable first (provisioning the schema), in-memory on
// unavailability when the policy allows degradation.
func NewModule(ctx context.Context, env module.Env) (*Module, error) {
	backend, err := module.SelectBackend(ctx, env, "companies", Schema)
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
	return "companies"
}

func (m *Module) Routes() []module.Route {
	return []module.Route{
		{Method: fiber.MethodGet, Path: "/companies", Handler: ListCompanies(m.repo)},
		{Method: fiber.MethodPost, Path: "/companies", Handler: CreateCompany(m.repo)},
		{Method: fiber.MethodGet, Path: "/companies/:id", Handler: GetCompany(m.repo)},
		{Method: fiber.MethodPut, Path: "/companies/:id", Handler: UpdateCompany(m.repo)},
		{Method: fiber.MethodPost, Path: "/companies/:id/duplicate", Handler: DuplicateCompany(m.repo)},
	}
}
