// Package store provides repository implementations for workouts.
package store

import (
	"context"
	"sort"
	"sync"

	"example.com/tracking/internal/domain"
)

// InMemoryRepository stores workouts in memory for local development and
// tests. Safe for concurrent use.
type InMemoryRepository struct {
	mu       sync.RWMutex
	workouts map[string]domain.Workout
}

// NewInMemoryRepository constructs an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		workouts: make(map[string]domain.Workout),
	}
}

// Save implements workouts.Repository.
func (r *InMemoryRepository) Save(ctx context.Context, w domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workouts[w.ID] = w
	return nil
}

// Get implements workouts.Repository. A missing ID yields (nil, nil).
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if w, ok := r.workouts[id]; ok {
		return &w, nil
	}
	return nil, nil
}

// List implements workouts.Repository, returning up to limit workouts sorted
// by start time, most recent first.
func (r *InMemoryRepository) List(ctx context.Context, limit int) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Workout, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
