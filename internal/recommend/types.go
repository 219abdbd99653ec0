// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package recommend

import (
	"time"

	"github.com/tomtom215/what2eat/internal/menu"
)

// RNG is the random source used by the selector. *math/rand.Rand satisfies it.
type RNG interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// ScoredItem is a catalog item with its score for one request.
type ScoredItem struct {
	// Item is the scored catalog record.
	Item menu.Item `json:"item"`

	// Score is the sum of all breakdown contributions.
	Score int `json:"score"`

	// Breakdown maps a contribution key (facet name, "synergy:<label>",
	// "weatherTemp") to its points. Intended for debugging.
	Breakdown map[string]int `json:"breakdown,omitempty"`
}

// Pick is the outcome of the selector.
type Pick struct {
	// Primary is the drawn recommendation; nil when the pool was empty.
	Primary *ScoredItem `json:"primary"`

	// Alternatives are runner-up suggestions, never including Primary.
	Alternatives []ScoredItem `json:"alternatives"`

	// Pool is the candidate pool the primary was drawn from, best first.
	Pool []ScoredItem `json:"pool,omitempty"`
}

// Request is the input of a recommendation run.
type Request struct {
	// Selections is a snapshot of the user's answers.
	Selections Selections `json:"selections"`

	// ExcludeIDs are item ids that must not be recommended.
	ExcludeIDs []string `json:"exclude_ids,omitempty"`

	// WeatherTemp is the current temperature in °C, if known.
	WeatherTemp *float64 `json:"weather_temp,omitempty"`

	// RequestID for tracing and logging.
	RequestID string `json:"request_id,omitempty"`

	// Seed, when non-zero, makes this run's draw reproducible without
	// touching the engine's shared random source.
	Seed int64 `json:"seed,omitempty"`
}

// Result is one recommended item with its justification.
type Result struct {
	// Item is the recommended catalog record.
	Item menu.Item `json:"item"`

	// Score is the item's total score.
	Score int `json:"score"`

	// Breakdown is the per-key score contribution.
	Breakdown map[string]int `json:"breakdown,omitempty"`

	// Reason is the human-readable justification.
	Reason string `json:"reason"`

	// Share holds share text and links for the item.
	Share menu.ShareCard `json:"share"`
}

// Response contains recommendation results.
type Response struct {
	// Primary is the recommended item, or nil when nothing matched.
	Primary *Result `json:"primary"`

	// Alternatives are up to Selection.Alternatives runner-up items.
	Alternatives []Result `json:"alternatives"`

	// Candidates is the number of items that survived filtering.
	Candidates int `json:"candidates"`

	// PoolSize is the number of items the primary was drawn from.
	PoolSize int `json:"pool_size"`

	// Metadata contains request processing information.
	Metadata ResponseMetadata `json:"metadata"`
}

// Found reports whether a primary recommendation exists.
func (r *Response) Found() bool {
	return r != nil && r.Primary != nil
}

// ResponseMetadata contains information about the recommendation process.
type ResponseMetadata struct {
	// RequestID is the unique identifier for this request.
	RequestID string `json:"request_id"`

	// Excluded is the number of distinct excluded ids.
	Excluded int `json:"excluded"`

	// WeatherApplied reports whether a temperature was supplied.
	WeatherApplied bool `json:"weather_applied"`

	// LatencyMS is the processing time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the recommendation was generated.
	Timestamp time.Time `json:"timestamp"`
}
