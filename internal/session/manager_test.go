// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/what2eat/internal/config"
	"github.com/tomtom215/what2eat/internal/menu"
)

func TestManager_CreateGetDelete(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()

	s, err := m.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Errorf("session id %q is not a uuid: %v", s.ID, err)
	}

	got, err := m.Get(ctx, s.ID)
	if err != nil || got.ID != s.ID {
		t.Fatalf("Get() = %+v, %v", got, err)
	}

	if err := m.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := m.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() after Delete error = %v", err)
	}
}

func TestManager_ExpiredIsNotFound(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	m := NewManager(store, time.Hour)
	ctx := context.Background()

	s := New("stale", time.Hour)
	s.ExpiresAt = time.Now().Add(-time.Minute)
	_ = store.Create(ctx, s)

	_, err := m.Get(ctx, "stale")
	if !errors.Is(err, ErrSessionNotFound) || !errors.Is(err, ErrSessionExpired) {
		t.Errorf("Get(stale) error = %v, want both not found and expired", err)
	}
}

func TestManager_Mutate(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), 30*time.Minute)
	fixed := time.Now().Add(time.Hour).Truncate(time.Second)
	m.now = func() time.Time { return fixed }
	ctx := context.Background()

	s, _ := m.Create(ctx)

	got, err := m.Mutate(ctx, s.ID, func(st *State) error {
		return st.Toggle("mealTime", menu.Breakfast)
	})
	if err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}
	if !got.UpdatedAt.Equal(fixed) || !got.ExpiresAt.Equal(fixed.Add(30*time.Minute)) {
		t.Errorf("timestamps = %v / %v", got.UpdatedAt, got.ExpiresAt)
	}

	stored, _ := m.Store().Get(ctx, s.ID)
	if len(stored.Selections.MealTime) != 1 {
		t.Errorf("mutation not persisted: %+v", stored.Selections)
	}
}

func TestManager_MutateErrorSavesNothing(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()
	s, _ := m.Create(ctx)

	_, err := m.Mutate(ctx, s.ID, func(st *State) error {
		st.Next()
		return st.Toggle("mealTime", "없는옵션")
	})
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("Mutate() error = %v, want ErrInvalidOption", err)
	}

	stored, _ := m.Get(ctx, s.ID)
	if stored.Step != 0 {
		t.Errorf("failed mutation was saved: step=%d", stored.Step)
	}

	if _, err := m.Mutate(ctx, "nope", func(*State) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Mutate(nope) error = %v", err)
	}
}

func TestManager_ConcurrentMutations(t *testing.T) {
	t.Parallel()

	m := NewManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()
	s, _ := m.Create(ctx)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Mutate(ctx, s.ID, func(st *State) error {
				st.ExcludeIDs = append(st.ExcludeIDs, uuid.NewString())
				return nil
			})
			if err != nil {
				t.Errorf("Mutate() error = %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := m.Get(ctx, s.ID)
	if len(got.ExcludeIDs) != workers {
		t.Errorf("ExcludeIDs = %d, want %d (lost updates)", len(got.ExcludeIDs), workers)
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()

	mem, err := NewFactory(&config.SessionConfig{Store: config.SessionStoreMemory}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFactory(memory) error = %v", err)
	}
	if mem.DB() != nil {
		t.Error("memory factory opened a database")
	}
	if got := mem.CreateStore().Backend(); got != "memory" {
		t.Errorf("Backend() = %q, want memory", got)
	}
	if err := mem.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	bf, err := NewFactory(&config.SessionConfig{Store: config.SessionStoreBadger, StorePath: t.TempDir()}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewFactory(badger) error = %v", err)
	}
	defer bf.Close()
	if got := bf.CreateStore().Backend(); got != "badger" {
		t.Errorf("Backend() = %q, want badger", got)
	}

	wrapped := NewFactoryWithDB(createTestBadgerDB(t))
	if _, ok := wrapped.CreateStore().(*BadgerStore); !ok {
		t.Error("NewFactoryWithDB().CreateStore() is not a BadgerStore")
	}
}
