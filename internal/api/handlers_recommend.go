// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/what2eat/internal/logging"
	"github.com/tomtom215/what2eat/internal/menu"
	"github.com/tomtom215/what2eat/internal/metrics"
	"github.com/tomtom215/what2eat/internal/models"
	"github.com/tomtom215/what2eat/internal/recommend"
)

// Recommendation sources for metrics.
const (
	sourceStateless = "stateless"
	sourceSession   = "session"
)

// Recommend runs the engine on caller-supplied selections.
//
// @Summary Recommend a menu
// @Description Scores the catalog against the selections and draws one primary item plus alternatives.
// @Description A null primary means nothing matched; it is not an error.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "Selections, excluded ids and optional temperature"
// @Success 200 {object} models.APIResponse{data=recommend.Response}
// @Failure 400 {object} models.APIResponse "Validation error"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RecommendRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.runEngine(r.Context(), sourceStateless, recommend.Request{
		Selections:  req.Selections,
		ExcludeIDs:  req.ExcludeIDs,
		WeatherTemp: req.WeatherTemp,
		RequestID:   logging.RequestIDFromContext(r.Context()),
		Seed:        req.Seed,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, resp, start)
}

// Reason explains why an item fits the selections.
//
// @Summary Explain a menu item
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body models.ReasonRequest true "Menu id and selections"
// @Success 200 {object} models.APIResponse{data=models.ReasonResult}
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 404 {object} models.APIResponse "Menu item not found"
// @Router /reason [post]
func (h *Handler) Reason(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ReasonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reason, err := h.engine.Explain(req.MenuID, &req.Selections)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	it, _ := h.catalog.Get(req.MenuID)
	respondOK(w, http.StatusOK, models.ReasonResult{
		MenuID: req.MenuID,
		Reason: reason,
		Share:  menu.NewShareCard(&it, reason),
	}, start)
}

// Weather proxies the current weather. It always succeeds: without an API
// key or valid coordinates, or when the upstream fails, the dummy report is
// returned.
//
// @Summary Current weather
// @Description Returns the weather at lat/lon with the derived context tag and a display message
// @Tags Weather
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {object} models.APIResponse{data=models.WeatherView}
// @Router /weather [get]
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	report := h.weather.Current(r.Context(), getFloatParam(r, "lat"), getFloatParam(r, "lon"))
	respondOK(w, http.StatusOK, models.NewWeatherView(report, messageRand{}), start)
}

// runEngine runs one recommendation and records its outcome.
//
//nolint:gocritic // hugeParam: req passed by value like Engine.Recommend
func (h *Handler) runEngine(ctx context.Context, source string, req recommend.Request) (*recommend.Response, error) {
	start := time.Now()
	resp, err := h.engine.Recommend(ctx, req)

	// The engine only fails on a cancelled context.
	switch {
	case err != nil:
		metrics.RecordRecommendation(source, metrics.OutcomeCancelled, 0, 0, time.Since(start))
		return nil, err
	case resp.Found():
		metrics.RecordRecommendation(source, metrics.OutcomeFound, resp.Candidates, resp.PoolSize, time.Since(start))
	default:
		metrics.RecordRecommendation(source, metrics.OutcomeEmpty, 0, 0, time.Since(start))
	}
	return resp, nil
}
