// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package session

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/what2eat/internal/config"
)

// Factory creates session stores based on configuration.
type Factory struct {
	db *badger.DB
}

// NewFactory creates a new session store factory.
// If cfg.Store is "badger", it opens a BadgerDB at cfg.StorePath.
// If cfg.Store is "memory" or empty, no database is opened.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewFactory(cfg *config.SessionConfig, logger zerolog.Logger) (*Factory, error) {
	factory := &Factory{}

	if cfg.Store == config.SessionStoreBadger {
		opts := badger.DefaultOptions(cfg.StorePath).
			WithLogger(badgerLogger{logger: logger.With().Str("component", "badger").Logger()})

		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger db for sessions: %w", err)
		}
		factory.db = db
	}

	return factory, nil
}

// NewFactoryWithDB wraps an already open BadgerDB.
func NewFactoryWithDB(db *badger.DB) *Factory {
	return &Factory{db: db}
}

// CreateStore creates a Store based on the factory's configuration.
func (f *Factory) CreateStore() Store {
	if f.db != nil {
		return NewBadgerStore(f.db)
	}
	return NewMemoryStore()
}

// Close closes the underlying BadgerDB if one was opened.
func (f *Factory) Close() error {
	if f.db != nil {
		return f.db.Close()
	}
	return nil
}

// DB returns the underlying BadgerDB, or nil if using memory store.
func (f *Factory) DB() *badger.DB {
	return f.db
}

// gcDiscardRatio is the fraction of stale data a value log file must hold
// before BadgerDB rewrites it.
const gcDiscardRatio = 0.5

// RunGC reclaims BadgerDB value log space, rewriting files until none
// qualify. It is a no-op for the memory store.
func (f *Factory) RunGC() error {
	if f.db == nil {
		return nil
	}
	for {
		err := f.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run value log gc: %w", err)
		}
	}
}
