// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed by the API router at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint (chi route pattern), status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by httprate (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommendations_total: Engine runs (counter)
    Labels: source (stateless, session, retry), outcome (found, empty, cancelled)
  - recommendation_duration_seconds: Score, pick and explain latency (histogram)
  - recommendation_pool_size: Weighted draw pool size (histogram)
  - recommendation_candidates: Items surviving hard filters (histogram)

Weather Metrics:
  - weather_fetches_total: Lookups by outcome (counter)
    Labels: outcome (live, cached, no_key, bad_coords, upstream_error,
    decode_error, breaker_open, rate_limited)
  - weather_upstream_duration_seconds: OpenWeather call latency (histogram)

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counter)
  - cache_entries (gauge)
    Labels: cache_type

Session Metrics:
  - session_store_operations_total: Store calls (counter)
    Labels: backend (memory, badger), operation, result
  - session_store_duration_seconds: Store latency (histogram)
  - sessions_expired_total: Sessions removed by the janitor (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels: name, result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels: name, from_state, to_state

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendation("stateless", metrics.OutcomeFound,
	    resp.Candidates, resp.PoolSize, time.Since(start))

Endpoint labels use the chi route pattern rather than the raw path so that
session IDs do not create unbounded label cardinality.
*/
package metrics
