// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package weather

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/what2eat/internal/config"
	"github.com/tomtom215/what2eat/internal/metrics"
)

// fakeOpenWeather is an httptest server that counts upstream calls.
type fakeOpenWeather struct {
	*httptest.Server
	hits atomic.Int32
}

func newFakeOpenWeather(t *testing.T, handler http.HandlerFunc) *fakeOpenWeather {
	t.Helper()
	f := &fakeOpenWeather{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func testWeatherConfig(baseURL string) *config.WeatherConfig {
	return &config.WeatherConfig{
		APIKey:        "test-key",
		BaseURL:       baseURL,
		Timeout:       2 * time.Second,
		CacheTTL:      10 * time.Minute,
		RatePerMinute: 6000,
		Burst:         100,
	}
}

func newTestClient(t *testing.T, f *fakeOpenWeather, mutate func(*config.WeatherConfig)) *Client {
	t.Helper()
	cfg := testWeatherConfig(f.URL)
	if mutate != nil {
		mutate(cfg)
	}
	return NewClient(cfg, zerolog.Nop())
}

func f64(v float64) *float64 { return &v }

func TestClient_Success(t *testing.T) {
	t.Parallel()

	f := newFakeOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if q.Get("lat") != "37.5665" || q.Get("lon") != "126.978" {
			t.Errorf("coords = %s,%s", q.Get("lat"), q.Get("lon"))
		}
		if q.Get("appid") != "test-key" || q.Get("units") != "metric" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		jsonBody(`{"main":{"temp":31.5},"weather":[{"main":"Rain","description":"light rain"}]}`)(w, r)
	})
	c := newTestClient(t, f, nil)

	got := c.Current(context.Background(), f64(37.5665), f64(126.978))
	want := Report{Temp: 31.5, Condition: "Rain"}
	if got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
}

func TestClient_DefaultCondition(t *testing.T) {
	t.Parallel()

	f := newFakeOpenWeather(t, jsonBody(`{"main":{"temp":-3},"weather":[]}`))
	c := newTestClient(t, f, nil)

	got := c.Current(context.Background(), f64(0), f64(0))
	if got.Condition != DummyCondition || got.Temp != -3 || got.IsDummy {
		t.Errorf("Current() = %+v", got)
	}
}

func TestClient_DummyFallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		handler   http.HandlerFunc
		mutate    func(*config.WeatherConfig)
		lat, lon  *float64
		wantHits  int32
		wantError string
	}{
		{
			name:    "no api key",
			handler: jsonBody(`{"main":{"temp":10}}`),
			mutate:  func(c *config.WeatherConfig) { c.APIKey = "" },
			lat:     f64(37.5), lon: f64(127),
		},
		{
			name:    "missing latitude",
			handler: jsonBody(`{"main":{"temp":10}}`),
			lat:     nil, lon: f64(127),
		},
		{
			name:    "latitude out of range",
			handler: jsonBody(`{"main":{"temp":10}}`),
			lat:     f64(91), lon: f64(127),
		},
		{
			name:    "longitude out of range",
			handler: jsonBody(`{"main":{"temp":10}}`),
			lat:     f64(37.5), lon: f64(-180.5),
		},
		{
			name: "upstream 500",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			lat: f64(37.5), lon: f64(127),
			wantHits: 1, wantError: FetchFailedMessage,
		},
		{
			name: "upstream 401",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, `{"cod":401}`, http.StatusUnauthorized)
			},
			lat: f64(37.5), lon: f64(127),
			wantHits: 1, wantError: FetchFailedMessage,
		},
		{
			name:    "malformed body",
			handler: jsonBody(`{"main":`),
			lat:     f64(37.5), lon: f64(127),
			wantHits: 1, wantError: FetchFailedMessage,
		},
		{
			name:    "missing main block",
			handler: jsonBody(`{"weather":[{"main":"Clouds"}]}`),
			lat:     f64(37.5), lon: f64(127),
			wantHits: 1, wantError: FetchFailedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFakeOpenWeather(t, tt.handler)
			c := newTestClient(t, f, tt.mutate)

			got := c.Current(context.Background(), tt.lat, tt.lon)
			if !got.IsDummy || got.Temp != DummyTemp || got.Condition != DummyCondition {
				t.Errorf("Current() = %+v, want dummy", got)
			}
			if got.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", got.Error, tt.wantError)
			}
			if hits := f.hits.Load(); hits != tt.wantHits {
				t.Errorf("upstream hits = %d, want %d", hits, tt.wantHits)
			}
		})
	}
}

func TestClient_CacheHitAvoidsUpstream(t *testing.T) {
	t.Parallel()

	f := newFakeOpenWeather(t, jsonBody(`{"main":{"temp":18},"weather":[{"main":"Clouds"}]}`))
	c := newTestClient(t, f, nil)
	ctx := context.Background()

	first := c.Current(ctx, f64(37.5665), f64(126.978))
	// Same two-decimal bucket.
	second := c.Current(ctx, f64(37.5701), f64(126.9801))
	if first != second {
		t.Errorf("cached report differs: %+v vs %+v", first, second)
	}
	if hits := f.hits.Load(); hits != 1 {
		t.Errorf("upstream hits = %d, want 1", hits)
	}

	c.Current(ctx, f64(35.1796), f64(129.0756))
	if hits := f.hits.Load(); hits != 2 {
		t.Errorf("upstream hits after new coords = %d, want 2", hits)
	}
}

func TestClient_FailuresAreNotCached(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)
	f := newFakeOpenWeather(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		jsonBody(`{"main":{"temp":12},"weather":[{"main":"Mist"}]}`)(w, r)
	})
	c := newTestClient(t, f, nil)
	ctx := context.Background()

	if got := c.Current(ctx, f64(1), f64(1)); !got.IsDummy {
		t.Fatalf("expected dummy, got %+v", got)
	}
	fail.Store(false)
	if got := c.Current(ctx, f64(1), f64(1)); got.IsDummy || got.Condition != "Mist" {
		t.Errorf("expected live report after recovery, got %+v", got)
	}
}

func TestClient_BreakerOpens(t *testing.T) {
	t.Parallel()

	f := newFakeOpenWeather(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := newTestClient(t, f, nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		c.Current(ctx, f64(10), f64(10))
	}
	if state := c.BreakerState(); state != "open" {
		t.Fatalf("BreakerState() = %s, want open", state)
	}

	got := c.Current(ctx, f64(10), f64(10))
	if !got.IsDummy || got.Error != FetchFailedMessage {
		t.Errorf("Current() with open breaker = %+v", got)
	}
	if hits := f.hits.Load(); hits != 10 {
		t.Errorf("upstream hits = %d, want 10", hits)
	}
}

func TestClient_RateLimited(t *testing.T) {
	t.Parallel()

	f := newFakeOpenWeather(t, jsonBody(`{"main":{"temp":20},"weather":[{"main":"Clear"}]}`))
	c := newTestClient(t, f, func(cfg *config.WeatherConfig) {
		cfg.RatePerMinute = 1
		cfg.Burst = 1
		cfg.Timeout = 50 * time.Millisecond
	})
	ctx := context.Background()

	if got := c.Current(ctx, f64(1), f64(1)); got.IsDummy {
		t.Fatalf("first call should be live, got %+v", got)
	}
	if got := c.Current(ctx, f64(2), f64(2)); !got.IsDummy {
		t.Errorf("second call should be rate limited, got %+v", got)
	}
	if hits := f.hits.Load(); hits != 1 {
		t.Errorf("upstream hits = %d, want 1", hits)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	f := newFakeOpenWeather(t, jsonBody(`{"main":{"temp":20}}`))
	c := newTestClient(t, f, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := c.Current(ctx, f64(1), f64(1)); !got.IsDummy {
		t.Errorf("Current() = %+v, want dummy", got)
	}
	if state := c.BreakerState(); state != "closed" {
		t.Errorf("BreakerState() = %s, want closed", state)
	}
}

// Not parallel: asserts exact deltas on shared collectors.
func TestClient_Metrics(t *testing.T) {
	f := newFakeOpenWeather(t, jsonBody(`{"main":{"temp":5},"weather":[{"main":"Snow"}]}`))
	c := newTestClient(t, f, nil)
	ctx := context.Background()

	live := testutil.ToFloat64(metrics.WeatherFetches.WithLabelValues(metrics.WeatherLive))
	cached := testutil.ToFloat64(metrics.WeatherFetches.WithLabelValues(metrics.WeatherCached))
	bad := testutil.ToFloat64(metrics.WeatherFetches.WithLabelValues(metrics.WeatherBadCoords))

	c.Current(ctx, f64(60), f64(60))
	c.Current(ctx, f64(60), f64(60))
	c.Current(ctx, nil, nil)

	if got := testutil.ToFloat64(metrics.WeatherFetches.WithLabelValues(metrics.WeatherLive)) - live; got != 1 {
		t.Errorf("live delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.WeatherFetches.WithLabelValues(metrics.WeatherCached)) - cached; got != 1 {
		t.Errorf("cached delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.WeatherFetches.WithLabelValues(metrics.WeatherBadCoords)) - bad; got != 1 {
		t.Errorf("bad coords delta = %v, want 1", got)
	}
}

func TestStateToString(t *testing.T) {
	t.Parallel()

	if got := stateToFloat(99); got != -1 {
		t.Errorf("stateToFloat(unknown) = %v", got)
	}
	if got := stateToString(99); got != "unknown" {
		t.Errorf("stateToString(unknown) = %q", got)
	}
}
