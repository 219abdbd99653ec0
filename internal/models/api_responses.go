// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability and caching information.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"primary": {...}, "alternatives": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "query_time_ms": 2
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "taste[0] must be a known taste option",
//	    "details": {"field": "taste[0]"}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Handler processing time in milliseconds
//   - Cached: Whether the payload was served from cache (weather lookups)
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: Invalid request body or parameters (400)
//   - INVALID_STEP: Unknown step or option, or skip on a required step (400)
//   - NOT_FOUND: Menu item doesn't exist (404)
//   - SESSION_NOT_FOUND: Session doesn't exist or has expired (404)
//   - METHOD_NOT_ALLOWED: Wrong HTTP method for the route (405)
//   - RATE_LIMIT_EXCEEDED: Too many requests (429)
//   - INTERNAL_ERROR: Unexpected failure (500)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	Uptime        float64   `json:"uptime_seconds"`
	CatalogItems  int       `json:"catalog_items"`
	SessionStore  string    `json:"session_store"`
	SessionsReady bool      `json:"sessions_ready"`
	WeatherLive   bool      `json:"weather_live"`
	WeatherState  string    `json:"weather_circuit"`
	Timestamp     time.Time `json:"timestamp"`
}
