package company

import (
	"context"
	"sort"
	"strings"
	"sync"

	"bizapi/internal/apperr"
)

// MemoryRepository is the in-process implementation of Repository. It backs
// the fallback path and tests; it has no external dependency.
type MemoryRepository struct {
	mu        sync.RWMutex
	companies map[string]Company
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{companies: make(map[string]Company)}
}

func (r *MemoryRepository) List(_ context.Context, nameFilter string) ([]Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter := strings.ToLower(nameFilter)
	out := make([]Company, 0, len(r.companies))
	for _, c := range r.companies {
		if filter != "" && !strings.Contains(strings.ToLower(c.Name), filter) {
			continue
		}
		out = append(out, c)
	}

	// Map iteration order is random; sort for a stable listing.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryRepository) Create(_ context.Context, req Request) (*Company, error) {
	if req.Name == nil || *req.Name == "" {
		return nil, apperr.Validation("name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := NewFromRequest(req)
	r.companies[c.ID] = c
	return &c, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, req Request) (*Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}

	req.ApplyTo(&c)
	r.companies[id] = c
	return &c, nil
}

func (r *MemoryRepository) Duplicate(_ context.Context, id string) (*Company, error) {
	// Read under the read lock, then release it before writing; holding it
	// across the write acquisition would self-deadlock.
	r.mu.RLock()
	original, ok := r.companies[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	dup := original.Duplicate()

	r.mu.Lock()
	r.companies[dup.ID] = dup
	r.mu.Unlock()
	return &dup, nil
}
