// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/what2eat/internal/config"
	"github.com/tomtom215/what2eat/internal/middleware"
)

// Router binds handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler using the security settings for
// CORS and rate limiting.
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec)),
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(5, "application/json"))

	// Set before mounting so sub-routers inherit them.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
		r.Get("/", h.Health)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Get("/steps", h.Steps)
			r.Get("/menus", h.Menus)
			r.Get("/menus/{id}", h.MenuByID)
			r.Post("/recommend", h.Recommend)
			r.Post("/reason", h.Reason)
			r.Get("/weather", h.Weather)
		})

		// ========================
		// Questionnaire Sessions
		// ========================
		r.Route("/sessions", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitSession())

			r.With(router.chiMiddleware.RateLimitSessionCreate()).Post("/", h.CreateSession)
			r.Get("/{id}", h.GetSession)
			r.Delete("/{id}", h.DeleteSession)
			r.Post("/{id}/select", h.SelectOption)
			r.Post("/{id}/next", h.NextStep)
			r.Post("/{id}/prev", h.PrevStep)
			r.Post("/{id}/skip", h.SkipStep)
			r.Post("/{id}/reset", h.ResetSession)
			r.Post("/{id}/weather", h.LoadSessionWeather)
			r.Post("/{id}/recommend", h.RecommendSession)
			r.Post("/{id}/retry", h.RetrySession)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
