// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package api

import (
	"context"
	"math/rand"
	"time"

	"github.com/tomtom215/what2eat/internal/config"
	"github.com/tomtom215/what2eat/internal/menu"
	"github.com/tomtom215/what2eat/internal/recommend"
	"github.com/tomtom215/what2eat/internal/session"
	"github.com/tomtom215/what2eat/internal/weather"
)

// Version is reported by the health endpoints.
var Version = "1.0.0"

// Recommender runs recommendations and explains items.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	Explain(id string, sel *recommend.Selections) (string, error)
}

// WeatherProvider looks up the current weather. It never fails.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon *float64) weather.Report
	Configured() bool
	BreakerState() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response, decoding and error mapping helpers
//   - handlers_health.go: health endpoints
//   - handlers_catalog.go: steps and menu catalog
//   - handlers_recommend.go: stateless recommend, reason and weather
//   - handlers_session.go: questionnaire sessions
type Handler struct {
	engine    Recommender
	weather   WeatherProvider
	sessions  *session.Manager
	catalog   *menu.Catalog
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler with all required dependencies.
//
// Example:
//
//	handler := api.NewHandler(engine, weatherClient, manager, catalog, cfg)
//	router := api.NewRouter(handler, &cfg.Security)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(engine Recommender, wp WeatherProvider, sessions *session.Manager, catalog *menu.Catalog, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		weather:   wp,
		sessions:  sessions,
		catalog:   catalog,
		config:    cfg,
		startTime: time.Now(),
	}
}

// messageRand picks weather messages from the process-wide source, which
// is safe for concurrent use.
type messageRand struct{}

func (messageRand) Intn(n int) int { return rand.Intn(n) } //nolint:gosec // display text only
