// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeFound     = "found"
	OutcomeEmpty     = "empty"
	OutcomeCancelled = "cancelled"
)

// Weather fetch outcomes.
const (
	WeatherLive        = "live"
	WeatherCached      = "cached"
	WeatherNoKey       = "no_key"
	WeatherBadCoords   = "bad_coords"
	WeatherUpstream    = "upstream_error"
	WeatherDecode      = "decode_error"
	WeatherBreakerOpen = "breaker_open"
	WeatherRateLimited = "rate_limited"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation runs by outcome",
		},
		[]string{"source", "outcome"}, // source: "stateless", "session", "retry"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of a score, pick and explain run",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	RecommendationPoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_pool_size",
			Help:    "Number of candidates the primary item was drawn from",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates",
			Help:    "Number of catalog items surviving exclusion and hard filters",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 30, 40, 60},
		},
	)

	// Weather Metrics
	WeatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_fetches_total",
			Help: "Total number of weather lookups by outcome",
		},
		[]string{"outcome"},
	)

	WeatherUpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "weather_upstream_duration_seconds",
			Help:    "Duration of OpenWeather API calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of entries in cache",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions",
		},
		[]string{"cache_type"},
	)

	// Session Store Metrics
	SessionStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"backend", "operation", "result"}, // result: "ok", "not_found", "expired", "error"
	)

	SessionStoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "session_store_duration_seconds",
			Help:    "Duration of session store operations",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"backend", "operation"},
	)

	SessionsExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessions_expired_total",
			Help: "Total number of sessions removed by the cleanup sweep",
		},
		[]string{"backend"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of menu items in the loaded catalog",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one engine run. pool and candidates are
// only observed for runs that produced a primary item.
func RecordRecommendation(source, outcome string, candidates, pool int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(source, outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if outcome == OutcomeFound {
		RecommendationCandidates.Observe(float64(candidates))
		RecommendationPoolSize.Observe(float64(pool))
	}
}

// RecordWeatherFetch records a weather lookup outcome.
func RecordWeatherFetch(outcome string) {
	WeatherFetches.WithLabelValues(outcome).Inc()
}

// RecordCacheLookup records a hit or miss for the named cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// RecordSessionOp records a session store operation. result is one of
// "ok", "not_found", "expired" or "error".
func RecordSessionOp(backend, operation, result string, duration time.Duration) {
	SessionStoreOperations.WithLabelValues(backend, operation, result).Inc()
	SessionStoreDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

// RecordSessionsExpired records sessions removed by a cleanup sweep.
func RecordSessionsExpired(backend string, n int) {
	if n > 0 {
		SessionsExpired.WithLabelValues(backend).Add(float64(n))
	}
}

// SetAppInfo publishes version information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// SetUptime publishes the process uptime.
func SetUptime(d time.Duration) {
	AppUptime.Set(d.Seconds())
}

// SetCatalogItems publishes the size of the loaded catalog.
func SetCatalogItems(n int) {
	CatalogItems.Set(float64(n))
}

// RecordRateLimitHit records a request rejected by a rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// StatusLabel converts an HTTP status code into a metric label.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}
