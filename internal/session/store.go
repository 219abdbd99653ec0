// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/what2eat/internal/metrics"
)

// Store persists session states.
type Store interface {
	// Create stores a new state.
	Create(ctx context.Context, s *State) error

	// Get retrieves a state by ID. Returns ErrSessionNotFound or
	// ErrSessionExpired.
	Get(ctx context.Context, id string) (*State, error)

	// Update replaces an existing state.
	Update(ctx context.Context, s *State) error

	// Delete removes a state by ID. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// CleanupExpired removes all expired states.
	CleanupExpired(ctx context.Context) (int, error)

	// Count returns the number of stored states, expired ones included.
	Count(ctx context.Context) (int, error)

	// Backend names the storage backend for metrics and logs.
	Backend() string
}

// observe records one store operation.
func observe(backend, op string, start time.Time, err error) {
	metrics.RecordSessionOp(backend, op, resultLabel(err), time.Since(start))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrSessionNotFound):
		return "not_found"
	case errors.Is(err, ErrSessionExpired):
		return "expired"
	default:
		return "error"
	}
}

// MemoryStore is an in-memory Store. States are deep-copied on the way in
// and out so callers never share memory with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*State
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]*State)}
}

// Backend implements Store.
func (m *MemoryStore) Backend() string { return "memory" }

// Create stores a new state.
func (m *MemoryStore) Create(_ context.Context, s *State) error {
	start := time.Now()
	m.mu.Lock()
	m.states[s.ID] = s.Clone()
	m.mu.Unlock()
	observe(m.Backend(), "create", start, nil)
	return nil
}

// Get retrieves a state by ID.
func (m *MemoryStore) Get(_ context.Context, id string) (st *State, err error) {
	start := time.Now()
	defer func() { observe(m.Backend(), "get", start, err) }()

	m.mu.RLock()
	s, ok := m.states[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.IsExpired() {
		return nil, ErrSessionExpired
	}
	return s.Clone(), nil
}

// Update replaces an existing state.
func (m *MemoryStore) Update(_ context.Context, s *State) (err error) {
	start := time.Now()
	defer func() { observe(m.Backend(), "update", start, err) }()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.states[s.ID]; !ok {
		return ErrSessionNotFound
	}
	m.states[s.ID] = s.Clone()
	return nil
}

// Delete removes a state by ID.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	start := time.Now()
	m.mu.Lock()
	delete(m.states, id)
	m.mu.Unlock()
	observe(m.Backend(), "delete", start, nil)
	return nil
}

// CleanupExpired removes all expired states.
func (m *MemoryStore) CleanupExpired(_ context.Context) (int, error) {
	start := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	count := 0
	for id, s := range m.states {
		if s.expiredAt(now) {
			delete(m.states, id)
			count++
		}
	}
	observe(m.Backend(), "cleanup", start, nil)
	metrics.RecordSessionsExpired(m.Backend(), count)
	return count, nil
}

// Count returns the number of stored states.
func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states), nil
}
