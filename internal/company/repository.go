package company

import "context"

// Repository is the storage contract for the company family. Both backends
// implement exactly this set; callers never learn which one is bound.
//
// Lookups by unknown id return (nil, nil) — an absent result is not a
// failure. A backend that cannot be reached returns a storage error, never an
// empty result.
type Repository interface {
	// List returns all companies, or those whose name contains nameFilter
	// (case-insensitive) when it is non-empty. Ordering is stable within a
	// single backend instance but not contractual across backends.
	List(ctx context.Context, nameFilter string) ([]Company, error)

	// Get returns the company with the given id, or nil when unknown.
	Get(ctx context.Context, id string) (*Company, error)

	// Create stores a new company from the request. The id and timestamps are
	// generated; a missing CIF number is synthesized. Name is required.
	Create(ctx context.Context, req Request) (*Company, error)

	// Update merges present request fields into the stored company and
	// refreshes the updated timestamp. Returns nil when the id is unknown.
	Update(ctx context.Context, id string, req Request) (*Company, error)

	// Duplicate copies the company under a new identity with a fresh CIF
	// number and the copy marker on its name. Returns nil when the id is
	// unknown.
	Duplicate(ctx context.Context, id string) (*Company, error)
}
