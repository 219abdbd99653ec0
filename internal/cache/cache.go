// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

// Package cache provides a thread-safe in-memory TTL cache.
//
// Entries expire lazily on Get and eagerly in a periodic sweep. The sweep is
// run by Serve, which makes a Cache usable directly as a suture service:
//
//	c := cache.New[weather.Report]("weather", 10*time.Minute)
//	sup.Add(c)
//
// Hits, misses, evictions and the entry count are exported as Prometheus
// metrics labelled with the cache name.
package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/what2eat/internal/metrics"
)

// DefaultCleanupInterval is how often Serve sweeps expired entries.
const DefaultCleanupInterval = time.Minute

// Entry represents a cached item with expiration
type Entry[V any] struct {
	Data      V
	ExpiresAt time.Time
}

// Cache provides a thread-safe in-memory cache with TTL support
type Cache[V any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry[V]

	statsMu sync.RWMutex
	stats   Stats

	cleanupInterval time.Duration
}

// Stats tracks cache performance
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	now             func() time.Time
	cleanupInterval time.Duration
}

// WithClock overrides the time source. Tests use it to expire entries
// without sleeping.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithCleanupInterval overrides DefaultCleanupInterval.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) { o.cleanupInterval = d }
}

// New creates a cache whose entries live for ttl. name labels the cache's
// metrics and must be a valid Prometheus label value.
//
// No goroutine is started; run Serve (directly or under a supervisor) to
// sweep expired entries periodically.
func New[V any](name string, ttl time.Duration, opts ...Option) *Cache[V] {
	o := options{now: time.Now, cleanupInterval: DefaultCleanupInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[V]{
		name:            name,
		ttl:             ttl,
		now:             o.now,
		entries:         make(map[string]Entry[V]),
		stats:           Stats{LastCleanup: o.now()},
		cleanupInterval: o.cleanupInterval,
	}
}

// Name returns the cache's metric label.
func (c *Cache[V]) Name() string {
	return c.name
}

// TTL returns the default time-to-live.
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

// Get retrieves a value by key. Expired entries are removed and counted as
// misses.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !exists {
		c.recordMiss()
		return zero, false
	}

	if !c.now().Before(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check: another writer may have refreshed the entry.
		if cur, ok := c.entries[key]; ok && !c.now().Before(cur.ExpiresAt) {
			delete(c.entries, key)
			c.recordEviction(1, len(c.entries))
		}
		c.mu.Unlock()
		c.recordMiss()
		return zero, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL. A non-positive ttl stores
// nothing.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = Entry[V]{Data: value, ExpiresAt: c.now().Add(ttl)}
	size := len(c.entries)
	c.mu.Unlock()

	c.setSize(size)
}

// Delete removes an entry. Missing keys are a no-op.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	size := len(c.entries)
	c.mu.Unlock()

	if ok {
		c.recordEviction(1, size)
	}
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[string]Entry[V])
	c.mu.Unlock()

	c.recordEviction(n, 0)
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of cache statistics.
func (c *Cache[V]) GetStats() Stats {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache[V]) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Cleanup removes all expired entries and returns how many were removed.
func (c *Cache[V]) Cleanup() int {
	now := c.now()
	c.mu.Lock()
	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.ExpiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.recordEviction(removed, size)
	c.statsMu.Lock()
	c.stats.LastCleanup = now
	c.statsMu.Unlock()
	return removed
}

// Serve sweeps expired entries every cleanup interval until ctx is done.
// It implements suture.Service.
func (c *Cache[V]) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Cleanup()
		}
	}
}

// String identifies the cache in supervisor logs.
func (c *Cache[V]) String() string {
	return "cache-" + c.name
}

func (c *Cache[V]) recordHit() {
	c.statsMu.Lock()
	c.stats.Hits++
	c.statsMu.Unlock()
	metrics.RecordCacheLookup(c.name, true)
}

func (c *Cache[V]) recordMiss() {
	c.statsMu.Lock()
	c.stats.Misses++
	c.statsMu.Unlock()
	metrics.RecordCacheLookup(c.name, false)
}

func (c *Cache[V]) recordEviction(n, size int) {
	c.statsMu.Lock()
	c.stats.Evictions += int64(n)
	c.stats.TotalKeys = int64(size)
	c.statsMu.Unlock()
	if n > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(n))
	}
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(size))
}

func (c *Cache[V]) setSize(size int) {
	c.statsMu.Lock()
	c.stats.TotalKeys = int64(size)
	c.statsMu.Unlock()
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(size))
}

// GenerateKey creates a cache key from a prefix and parameters
func GenerateKey(prefix string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", prefix, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", prefix, hash[:16])
}
