// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/what2eat/internal/config"
)

func TestNewFactory(t *testing.T) {
	t.Parallel()

	t.Run("memory", func(t *testing.T) {
		t.Parallel()
		f, err := NewFactory(&config.SessionConfig{Store: config.SessionStoreMemory, TTL: time.Hour}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewFactory() error = %v", err)
		}
		defer f.Close()
		if f.DB() != nil {
			t.Error("memory factory opened a database")
		}
		if _, ok := f.CreateStore().(*MemoryStore); !ok {
			t.Errorf("CreateStore() = %T, want *MemoryStore", f.CreateStore())
		}
	})

	t.Run("badger", func(t *testing.T) {
		t.Parallel()
		f, err := NewFactory(&config.SessionConfig{Store: config.SessionStoreBadger, StorePath: t.TempDir(), TTL: time.Hour}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewFactory() error = %v", err)
		}
		defer f.Close()
		if f.DB() == nil {
			t.Fatal("badger factory has no database")
		}
		if _, ok := f.CreateStore().(*BadgerStore); !ok {
			t.Errorf("CreateStore() = %T, want *BadgerStore", f.CreateStore())
		}
	})
}

func TestFactory_RunGC(t *testing.T) {
	t.Parallel()

	t.Run("memory store is a no-op", func(t *testing.T) {
		t.Parallel()
		if err := (&Factory{}).RunGC(); err != nil {
			t.Errorf("RunGC() error = %v", err)
		}
	})

	t.Run("fresh on-disk database has nothing to rewrite", func(t *testing.T) {
		t.Parallel()
		f, err := NewFactory(&config.SessionConfig{Store: config.SessionStoreBadger, StorePath: t.TempDir(), TTL: time.Hour}, zerolog.Nop())
		if err != nil {
			t.Fatalf("NewFactory() error = %v", err)
		}
		defer f.Close()
		if err := f.RunGC(); err != nil {
			t.Errorf("RunGC() error = %v", err)
		}
	})

	t.Run("in-memory database reports the badger error", func(t *testing.T) {
		t.Parallel()
		f := NewFactoryWithDB(createTestBadgerDB(t))
		if err := f.RunGC(); !errors.Is(err, badger.ErrGCInMemoryMode) {
			t.Errorf("RunGC() error = %v, want ErrGCInMemoryMode", err)
		}
	})
}
