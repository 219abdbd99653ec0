// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/what2eat/internal/menu"
)

// ErrItemNotFound is returned when a menu id is not in the catalog.
var ErrItemNotFound = errors.New("menu item not found")

// Engine binds a catalog, a configuration and a random source and runs the
// score, pick and explain pipeline. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *menu.Catalog
	scorer  *Scorer

	// Shared random source, used when a request carries no seed.
	rng *lockedRand

	requestCount atomic.Int64
	emptyCount   atomic.Int64
	errorCount   atomic.Int64
}

// lockedRand serializes access to a *rand.Rand.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Requests int64 `json:"requests"`
	Empty    int64 `json:"empty"`
	Errors   int64 `json:"errors"`
}

// NewEngine creates a new recommendation engine over catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(catalog *menu.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	return &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: catalog,
		scorer:  NewScorer(cfg, nil),
		rng:     &lockedRand{r: rand.New(rand.NewSource(seed))}, //nolint:gosec // math/rand is fine for menu draws
	}, nil
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *menu.Catalog {
	return e.catalog
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend scores the catalog against the request, draws a primary item and
// picks alternatives. When nothing survives filtering the response has a nil
// Primary; this is not an error. The only error is a cancelled context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	logger := e.createRequestLogger(req)

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	sel := req.Selections.Clone()
	scored := e.scorer.Score(e.catalog.Items(), &sel, req.ExcludeIDs, req.WeatherTemp)
	if len(scored) == 0 {
		e.emptyCount.Add(1)
		logger.Debug().Msg("no candidates available")
		return e.emptyResponse(req, start), nil
	}

	pick := PickFrom(scored, e.randFor(req), &e.config.Selection)
	if pick.Primary == nil {
		e.emptyCount.Add(1)
		return e.emptyResponse(req, start), nil
	}

	resp := &Response{
		Primary:      e.toResult(pick.Primary, &sel),
		Alternatives: make([]Result, 0, len(pick.Alternatives)),
		Candidates:   len(scored),
		PoolSize:     len(pick.Pool),
		Metadata:     e.buildResponseMetadata(req, start),
	}
	for i := range pick.Alternatives {
		resp.Alternatives = append(resp.Alternatives, *e.toResult(&pick.Alternatives[i], &sel))
	}

	logger.Debug().
		Str("primary", resp.Primary.Item.ID).
		Int("score", resp.Primary.Score).
		Int("candidates", resp.Candidates).
		Int("pool", resp.PoolSize).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// Explain returns the reason text for the catalog item id under sel.
func (e *Engine) Explain(id string, sel *Selections) (string, error) {
	it, ok := e.catalog.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return Explain(&it, sel), nil
}

// Stats returns the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests: e.requestCount.Load(),
		Empty:    e.emptyCount.Load(),
		Errors:   e.errorCount.Load(),
	}
}

// randomSeed draws a seed from the operating system so unseeded engines do
// not replay the same sequence across restarts.
func randomSeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]) &^ (1 << 63))
}

// randFor returns a dedicated source for seeded requests and the shared one
// otherwise.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) randFor(req Request) RNG {
	if req.Seed != 0 {
		return rand.New(rand.NewSource(req.Seed)) //nolint:gosec // math/rand is fine for menu draws
	}
	return e.rng
}

func (e *Engine) toResult(s *ScoredItem, sel *Selections) *Result {
	reason := Explain(&s.Item, sel)
	return &Result{
		Item:      s.Item,
		Score:     s.Score,
		Breakdown: s.Breakdown,
		Reason:    reason,
		Share:     menu.NewShareCard(&s.Item, reason),
	}
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("excluded", len(req.ExcludeIDs)).
		Logger()
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) emptyResponse(req Request, start time.Time) *Response {
	return &Response{
		Alternatives: []Result{},
		Metadata:     e.buildResponseMetadata(req, start),
	}
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, start time.Time) ResponseMetadata {
	excluded := make(map[string]struct{}, len(req.ExcludeIDs))
	for _, id := range req.ExcludeIDs {
		excluded[id] = struct{}{}
	}
	return ResponseMetadata{
		RequestID:      req.RequestID,
		Excluded:       len(excluded),
		WeatherApplied: req.WeatherTemp != nil,
		LatencyMS:      time.Since(start).Milliseconds(),
		Timestamp:      time.Now(),
	}
}
