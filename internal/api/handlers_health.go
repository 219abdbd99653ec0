// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/what2eat/internal/metrics"
	"github.com/tomtom215/what2eat/internal/models"
)

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns catalog size, session store readiness, weather client state and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	health := h.healthStatus(r)
	respondOK(w, http.StatusOK, health, start)
}

// HealthLive is the liveness probe. It only proves the process serves HTTP.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondOK(w, http.StatusOK, map[string]string{"status": "alive"}, time.Now())
}

// HealthReady is the readiness probe. The service is ready when the
// catalog is loaded and the session store answers.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "Not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	health := h.healthStatus(r)

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	respondOK(w, status, health, start)
}

func (h *Handler) healthStatus(r *http.Request) models.HealthStatus {
	uptime := time.Since(h.startTime)
	metrics.SetUptime(uptime)

	health := models.HealthStatus{
		Status:    "healthy",
		Version:   Version,
		Uptime:    uptime.Seconds(),
		Timestamp: time.Now(),
	}

	if h.catalog != nil {
		health.CatalogItems = h.catalog.Len()
	}

	if h.sessions != nil {
		store := h.sessions.Store()
		health.SessionStore = store.Backend()
		_, err := store.Count(r.Context())
		health.SessionsReady = err == nil
	}

	if h.weather != nil {
		health.WeatherLive = h.weather.Configured()
		health.WeatherState = h.weather.BreakerState()
	}

	if health.CatalogItems == 0 || !health.SessionsReady {
		health.Status = "degraded"
	}
	return health
}
