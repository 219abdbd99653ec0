// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/what2eat/internal/cache"
	"github.com/tomtom215/what2eat/internal/config"
	"github.com/tomtom215/what2eat/internal/logging"
	"github.com/tomtom215/what2eat/internal/metrics"
	"github.com/tomtom215/what2eat/internal/validation"
)

// Dummy payload values, returned whenever live weather is unavailable.
const (
	DummyTemp      = 22.0
	DummyCondition = "Clear"
)

// FetchFailedMessage is attached to dummy reports caused by an upstream
// failure (as opposed to a missing key or missing coordinates).
const FetchFailedMessage = "Failed to fetch real weather data"

var (
	errUpstreamStatus = errors.New("upstream returned non-200 status")
	errDecode         = errors.New("decode upstream response")
	errCallerGone     = errors.New("caller cancelled")
)

// Report is the result of a weather lookup. It is never an error: failures
// produce the dummy payload with IsDummy set.
type Report struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	IsDummy   bool    `json:"is_dummy"`
	Error     string  `json:"error,omitempty"`
}

// Dummy returns the fallback report.
func Dummy() Report {
	return Report{Temp: DummyTemp, Condition: DummyCondition, IsDummy: true}
}

// coordinates is validated with the shared validator.
type coordinates struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lon *float64 `json:"lon" validate:"required,longitude"`
}

// owmResponse is the subset of the OpenWeather current-weather payload we use.
type owmResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// Client fetches current weather from OpenWeather with caching, an outbound
// token bucket and a circuit breaker. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *breaker
	cache      *cache.Cache[Report]
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache replaces the report cache.
func WithCache(rc *cache.Cache[Report]) Option {
	return func(c *Client) { c.cache = rc }
}

// NewClient creates an OpenWeather client from cfg. An empty APIKey is
// valid: every lookup then returns the dummy report.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewClient(cfg *config.WeatherConfig, logger zerolog.Logger, opts ...Option) *Client {
	logger = logger.With().Str("component", "weather").Logger()

	perSecond := rate.Limit(float64(cfg.RatePerMinute) / 60.0)
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(perSecond, cfg.Burst),
		breaker:    newBreaker(BreakerName, logger),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = cache.New[Report]("weather", cfg.CacheTTL)
	}
	return c
}

// Cache exposes the report cache so its sweeper can be supervised.
func (c *Client) Cache() *cache.Cache[Report] {
	return c.cache
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// BreakerState returns the circuit breaker state as a string.
func (c *Client) BreakerState() string {
	return stateToString(c.breaker.state())
}

// Current returns the weather at (lat, lon). It never fails: missing
// configuration, invalid coordinates and upstream problems all yield the
// dummy report.
func (c *Client) Current(ctx context.Context, lat, lon *float64) Report {
	if c.apiKey == "" {
		metrics.RecordWeatherFetch(metrics.WeatherNoKey)
		return Dummy()
	}
	if err := validation.ValidateStruct(&coordinates{Lat: lat, Lon: lon}); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("weather lookup with invalid coordinates")
		metrics.RecordWeatherFetch(metrics.WeatherBadCoords)
		return Dummy()
	}

	key := cacheKey(*lat, *lon)
	if r, ok := c.cache.Get(key); ok {
		metrics.RecordWeatherFetch(metrics.WeatherCached)
		return r
	}

	if err := c.waitForToken(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("weather rate limit wait aborted")
		metrics.RecordWeatherFetch(metrics.WeatherRateLimited)
		return Dummy()
	}

	report, err := c.breaker.execute(func() (Report, error) {
		return c.fetch(ctx, *lat, *lon)
	})
	if err != nil {
		outcome := metrics.WeatherUpstream
		switch {
		case isRejected(err):
			outcome = metrics.WeatherBreakerOpen
		case errors.Is(err, errDecode):
			outcome = metrics.WeatherDecode
		}
		c.logger.Warn().
			Str("outcome", outcome).
			Str("error", logging.SanitizeError(err.Error())).
			Msg("weather fetch failed, using dummy payload")
		metrics.RecordWeatherFetch(outcome)

		d := Dummy()
		d.Error = FetchFailedMessage
		return d
	}

	c.cache.Set(key, report)
	metrics.RecordWeatherFetch(metrics.WeatherLive)
	return report
}

// waitForToken waits for the outbound limiter, but never longer than one
// request timeout.
func (c *Client) waitForToken(ctx context.Context) error {
	if c.httpClient.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}
	return c.limiter.Wait(ctx)
}

// fetch performs one upstream call.
func (c *Client) fetch(ctx context.Context, lat, lon float64) (Report, error) {
	start := time.Now()
	defer func() { metrics.WeatherUpstreamDuration.Observe(time.Since(start).Seconds()) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(lat, lon), http.NoBody)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Report{}, fmt.Errorf("%w: %w", errCallerGone, ctxErr)
		}
		return Report{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Report{}, fmt.Errorf("%w: %s", errUpstreamStatus, resp.Status)
	}

	var body owmResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return Report{}, fmt.Errorf("%w: %w", errDecode, err)
	}
	if body.Main == nil || body.Main.Temp == nil {
		return Report{}, fmt.Errorf("%w: missing main.temp", errDecode)
	}

	condition := DummyCondition
	if len(body.Weather) > 0 && body.Weather[0].Main != "" {
		condition = body.Weather[0].Main
	}
	return Report{Temp: *body.Main.Temp, Condition: condition}, nil
}

func (c *Client) requestURL(lat, lon float64) string {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	return c.baseURL + "/data/2.5/weather?" + q.Encode()
}

// cacheKey buckets coordinates to two decimals (about 1 km).
func cacheKey(lat, lon float64) string {
	return cache.GenerateKey("weather", [2]float64{round2(lat), round2(lon)})
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
