// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/what2eat/internal/logging"
	"github.com/tomtom215/what2eat/internal/models"
	"github.com/tomtom215/what2eat/internal/recommend"
	"github.com/tomtom215/what2eat/internal/session"
	"github.com/tomtom215/what2eat/internal/weather"
)

// sessionContext extracts the session id and tags the request context with
// it for logging.
func sessionContext(r *http.Request) (context.Context, string) {
	id := chi.URLParam(r, "id")
	return logging.ContextWithSessionID(r.Context(), id), id
}

// mutateSession applies fn to the session and renders the new state.
func (h *Handler) mutateSession(w http.ResponseWriter, r *http.Request, fn func(*session.State) error) {
	start := time.Now()
	ctx, id := sessionContext(r)

	st, err := h.sessions.Mutate(ctx, id, fn)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, models.NewSessionView(st), start)
}

// CreateSession starts a questionnaire.
//
// @Summary Create a session
// @Tags Sessions
// @Produce json
// @Success 201 {object} models.APIResponse{data=models.SessionView}
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	st, err := h.sessions.Create(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	logging.Ctx(logging.ContextWithSessionID(r.Context(), st.ID)).Debug().Msg("session created")
	respondOK(w, http.StatusCreated, models.NewSessionView(st), start)
}

// GetSession returns a session.
//
// @Summary Get a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=models.SessionView}
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, id := sessionContext(r)

	st, err := h.sessions.Get(ctx, id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, models.NewSessionView(st), start)
}

// DeleteSession removes a session. Deleting an unknown session succeeds.
//
// @Summary Delete a session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204 "Deleted"
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, id := sessionContext(r)

	if err := h.sessions.Delete(ctx, id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectOption toggles one option of a step, or replaces the step's
// selection when values are given.
//
// @Summary Select step options
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.SelectRequest true "Step and option, or step and values"
// @Success 200 {object} models.APIResponse{data=models.SessionView}
// @Failure 400 {object} models.APIResponse "Unknown step or option"
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id}/select [post]
func (h *Handler) SelectOption(w http.ResponseWriter, r *http.Request) {
	var req models.SelectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.mutateSession(w, r, func(st *session.State) error {
		if req.IsToggle() {
			return st.Toggle(req.Step, req.Option)
		}
		return st.Set(req.Step, req.Values)
	})
}

// NextStep advances the questionnaire. Past the last step the session is
// marked complete.
//
// @Summary Next step
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=models.SessionView}
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id}/next [post]
func (h *Handler) NextStep(w http.ResponseWriter, r *http.Request) {
	h.mutateSession(w, r, func(st *session.State) error {
		st.Next()
		return nil
	})
}

// PrevStep goes back one step.
//
// @Summary Previous step
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=models.SessionView}
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id}/prev [post]
func (h *Handler) PrevStep(w http.ResponseWriter, r *http.Request) {
	h.mutateSession(w, r, func(st *session.State) error {
		st.Prev()
		return nil
	})
}

// SkipStep passes on the current optional step.
//
// @Summary Skip the current step
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=models.SessionView}
// @Failure 400 {object} models.APIResponse "Step is not optional"
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id}/skip [post]
func (h *Handler) SkipStep(w http.ResponseWriter, r *http.Request) {
	h.mutateSession(w, r, func(st *session.State) error {
		_, err := st.Skip()
		return err
	})
}

// ResetSession clears the answers and returns to the first step.
//
// @Summary Reset a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=models.SessionView}
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id}/reset [post]
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.mutateSession(w, r, func(st *session.State) error {
		st.Reset()
		return nil
	})
}

// LoadSessionWeather loads the weather into the session. Only the first
// call has an effect; later calls return the stored weather with applied
// set to false and do not contact the upstream.
//
// @Summary Load weather into a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.CoordinatesRequest false "Coordinates"
// @Success 200 {object} models.APIResponse{data=models.SessionWeather}
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id}/weather [post]
func (h *Handler) LoadSessionWeather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CoordinatesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, id := sessionContext(r)
	current, err := h.sessions.Get(ctx, id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if current.Weather.Loaded {
		respondOK(w, http.StatusOK, sessionWeather(current, storedReport(current.Weather), false), start)
		return
	}

	// Fetch outside the session lock; ApplyWeather settles concurrent loads.
	report := h.weather.Current(ctx, req.Lat, req.Lon)

	applied := false
	st, err := h.sessions.Mutate(ctx, id, func(st *session.State) error {
		applied = st.ApplyWeather(weather.SnapshotFromReport(report))
		return nil
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if !applied {
		report = storedReport(st.Weather)
	}
	respondOK(w, http.StatusOK, sessionWeather(st, report, applied), start)
}

// RecommendSession runs the engine with the session's answers and stores
// the outcome.
//
// @Summary Recommend for a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=models.SessionRecommendation}
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id}/recommend [post]
func (h *Handler) RecommendSession(w http.ResponseWriter, r *http.Request) {
	h.recommendSession(w, r, false)
}

// RetrySession excludes the last primary item and recommends again.
//
// @Summary Retry a session recommendation
// @Description Adds the previous primary item to the exclusion list and re-runs the engine
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.APIResponse{data=models.SessionRecommendation}
// @Failure 404 {object} models.APIResponse "Session not found or expired"
// @Router /sessions/{id}/retry [post]
func (h *Handler) RetrySession(w http.ResponseWriter, r *http.Request) {
	h.recommendSession(w, r, true)
}

func (h *Handler) recommendSession(w http.ResponseWriter, r *http.Request, retry bool) {
	start := time.Now()
	ctx, id := sessionContext(r)
	requestID := logging.RequestIDFromContext(ctx)

	var resp *recommend.Response
	st, err := h.sessions.Mutate(ctx, id, func(st *session.State) error {
		if retry {
			st.Retry()
		}
		var err error
		resp, err = h.runEngine(ctx, sourceSession, st.Request(requestID))
		if err != nil {
			return err
		}
		st.RecordResult(resp)
		return nil
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondOK(w, http.StatusOK, models.SessionRecommendation{
		SessionView: models.NewSessionView(st),
		Result:      resp,
	}, start)
}

func sessionWeather(st *session.State, report weather.Report, applied bool) models.SessionWeather {
	return models.SessionWeather{
		SessionView: models.NewSessionView(st),
		WeatherView: models.NewWeatherView(report, messageRand{}),
		Applied:     applied,
	}
}

// storedReport rebuilds a report from a session's stored weather.
func storedReport(s weather.Snapshot) weather.Report {
	var r weather.Report
	if s.Temp != nil {
		r.Temp = *s.Temp
	}
	if s.Condition != nil {
		r.Condition = *s.Condition
	}
	return r
}
