package module

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Registry collects constructed modules and merges their route sets into one
// Fiber application. A path+verb collision between two modules is a
// configuration error and fails the merge loudly.
type Registry struct {
	modules []Module
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a constructed module.
func (r *Registry) Add(m Module) {
	r.modules = append(r.modules, m)
}

// Mount registers every module's routes on the app. It returns an error on
// the first duplicate path+verb pair, naming both modules involved.
func (r *Registry) Mount(app *fiber.App) error {
	claimed := make(map[string]string)

	for _, m := range r.modules {
		for _, rt := range m.Routes() {
			key := rt.Method + " " + rt.Path
			if owner, ok := claimed[key]; ok {
				return fmt.Errorf("route collision on %q between modules %s and %s", key, owner, m.Name())
			}
			claimed[key] = m.Name()
			app.Add(rt.Method, rt.Path, rt.Handler)
		}
	}
	return nil
}
