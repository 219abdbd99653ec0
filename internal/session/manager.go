// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const lockStripes = 64

// Manager creates sessions and applies transitions to them. Mutations on
// the same id are serialized so concurrent requests never lose an update.
type Manager struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
	locks [lockStripes]sync.Mutex
}

// NewManager creates a manager over store. Sessions live ttl after their
// last mutation.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// Store returns the backing store.
func (m *Manager) Store() Store {
	return m.store
}

// TTL returns the idle lifetime of a session.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create starts a new session with a random id.
func (m *Manager) Create(ctx context.Context) (*State, error) {
	s := New(uuid.NewString(), m.ttl)
	if err := m.store.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return s, nil
}

// Get returns the session with the given id. Expired sessions are reported
// as not found.
func (m *Manager) Get(ctx context.Context, id string) (*State, error) {
	s, err := m.store.Get(ctx, id)
	if errors.Is(err, ErrSessionExpired) {
		return nil, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}
	return s, err
}

// Delete removes a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	l := m.lock(id)
	l.Lock()
	defer l.Unlock()
	return m.store.Delete(ctx, id)
}

// Mutate loads the session, applies fn and saves the result. When fn fails
// nothing is saved and its error is returned unchanged.
func (m *Manager) Mutate(ctx context.Context, id string, fn func(*State) error) (*State, error) {
	l := m.lock(id)
	l.Lock()
	defer l.Unlock()

	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	s.Touch(m.now(), m.ttl)
	if err := m.store.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return s, nil
}

func (m *Manager) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &m.locks[h.Sum32()%lockStripes]
}
