package worktype

import "context"

// Repository is the storage contract for the work-type family, a reduced
// variant of the company contract: list and create only.
type Repository interface {
	// List returns every work type with its attribute definitions.
	List(ctx context.Context) ([]WorkType, error)

	// Create stores a work type and all of its attribute definitions
	// atomically: either the whole aggregate exists afterwards or none of it.
	Create(ctx context.Context, req CreateRequest) (*WorkType, error)
}
