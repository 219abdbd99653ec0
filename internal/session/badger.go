// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/what2eat/internal/metrics"
)

// Key prefix for BadgerDB storage
const sessionKeyPrefix = "session:"

// minEntryTTL keeps already-expired states readable long enough to be
// reported as expired rather than missing.
const minEntryTTL = time.Second

// BadgerStore implements Store using BadgerDB. Every entry carries a TTL
// matching the state's ExpiresAt, so BadgerDB drops stale sessions on its
// own; CleanupExpired sweeps whatever is left.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore creates a BadgerDB-backed session store on an open DB.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Backend implements Store.
func (b *BadgerStore) Backend() string { return "badger" }

func sessionKey(id string) []byte {
	return []byte(sessionKeyPrefix + id)
}

func (b *BadgerStore) entry(s *State) (*badger.Entry, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl < minEntryTTL {
		ttl = minEntryTTL
	}
	return badger.NewEntry(sessionKey(s.ID), data).WithTTL(ttl), nil
}

// Create stores a new state.
func (b *BadgerStore) Create(_ context.Context, s *State) (err error) {
	start := time.Now()
	defer func() { observe(b.Backend(), "create", start, err) }()

	e, err := b.entry(s)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		return nil
	})
}

// Get retrieves a state by ID.
func (b *BadgerStore) Get(_ context.Context, id string) (st *State, err error) {
	start := time.Now()
	defer func() { observe(b.Backend(), "get", start, err) }()

	var s State
	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s)
		})
	})
	if err != nil {
		return nil, err
	}

	if s.IsExpired() {
		return nil, ErrSessionExpired
	}
	return &s, nil
}

// Update replaces an existing state and refreshes its TTL.
func (b *BadgerStore) Update(_ context.Context, s *State) (err error) {
	start := time.Now()
	defer func() { observe(b.Backend(), "update", start, err) }()

	e, err := b.entry(s)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(e.Key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("get session: %w", err)
		}
		return txn.SetEntry(e)
	})
}

// Delete removes a state by ID.
func (b *BadgerStore) Delete(_ context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe(b.Backend(), "delete", start, err) }()

	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

// CleanupExpired removes all expired states.
func (b *BadgerStore) CleanupExpired(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { observe(b.Backend(), "cleanup", start, err) }()

	var expiredIDs []string
	now := time.Now()

	err = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var s State
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &s)
			}); err != nil {
				continue
			}
			if s.expiredAt(now) {
				expiredIDs = append(expiredIDs, s.ID)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan sessions: %w", err)
	}

	count := 0
	for _, id := range expiredIDs {
		if ctx.Err() != nil {
			break
		}
		if err := b.Delete(ctx, id); err != nil {
			continue
		}
		count++
	}
	metrics.RecordSessionsExpired(b.Backend(), count)
	return count, nil
}

// Count returns the total number of sessions in the store.
func (b *BadgerStore) Count(_ context.Context) (int, error) {
	count := 0
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// badgerLogger routes BadgerDB's internal logging through zerolog.
// BadgerDB is chatty at info level, so info is demoted to debug.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msgf(strings.TrimSpace(format), args...)
}
