package worktype

import (
	"context"
	"sort"
	"sync"

	"bizapi/internal/apperr"
)

// MemoryRepository is the in-process implementation of Repository.
type MemoryRepository struct {
	mu        sync.RWMutex
	workTypes map[string]WorkType
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{workTypes: make(map[string]WorkType)}
}

func (r *MemoryRepository) List(_ context.Context) ([]WorkType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]WorkType, 0, len(r.workTypes))
	for _, wt := range r.workTypes {
		out = append(out, wt)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *MemoryRepository) Create(_ context.Context, req CreateRequest) (*WorkType, error) {
	if req.Title == "" {
		return nil, apperr.Validation("title is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	wt := NewFromRequest(req)
	r.workTypes[wt.ID.String()] = wt
	return &wt, nil
}
