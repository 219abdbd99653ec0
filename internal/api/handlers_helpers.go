// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/what2eat/internal/logging"
	"github.com/tomtom215/what2eat/internal/metrics"
	"github.com/tomtom215/what2eat/internal/models"
	"github.com/tomtom215/what2eat/internal/recommend"
	"github.com/tomtom215/what2eat/internal/session"
	"github.com/tomtom215/what2eat/internal/validation"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// Error codes
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidStep      = "INVALID_STEP"
	CodeNotFound         = "NOT_FOUND"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeInternal         = "INTERNAL_ERROR"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondOK wraps data in a success envelope.
func respondOK(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusError,
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondAPIError sends a prepared APIError, details included.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// respondServiceError maps domain errors to status codes. Client errors
// are not logged; everything else is logged and hidden behind a generic
// message.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, CodeSessionNotFound, "Session not found or expired", nil)
	case errors.Is(err, session.ErrInvalidStep),
		errors.Is(err, session.ErrInvalidOption),
		errors.Is(err, session.ErrNotOptional):
		respondError(w, http.StatusBadRequest, CodeInvalidStep, err.Error(), nil)
	case errors.Is(err, recommend.ErrItemNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, "Menu item not found", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Debug().Err(err).Msg("request abandoned")
		respondError(w, http.StatusServiceUnavailable, CodeInternal, "Request cancelled", nil)
	default:
		respondError(w, http.StatusInternalServerError, CodeInternal, "Internal server error", err)
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) *models.APIError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &models.APIError{
			Code:    CodeValidation,
			Message: "Invalid JSON body: " + sanitizeLogValue(err.Error()),
		}
	}
	return nil
}

// decodeAndValidate decodes and validates a request body, writing the
// error response itself. It reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if apiErr := decodeJSON(w, r, v); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return false
	}
	if apiErr := validateRequest(v); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return false
	}
	return true
}

// getFloatParam parses an optional float query parameter. Missing or
// malformed values yield nil.
func getFloatParam(r *http.Request, key string) *float64 {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// notFound answers unmatched routes with the error envelope.
func notFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, CodeNotFound, "Route not found", nil)
}

// methodNotAllowed answers known routes called with the wrong method.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
}

// rateLimited answers requests rejected by httprate. Limiters run inside
// route groups, so the pattern may still end in a wildcard.
func rateLimited(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRateLimitHit(limitedEndpoint(r))
	respondError(w, http.StatusTooManyRequests, CodeRateLimited, "Too many requests", nil)
}

// limitedEndpoint labels a rate-limited request by the chi pattern matched so
// far. Raw paths are never used as labels.
func limitedEndpoint(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
