// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - RequestID: UUID-based request tracking; the ID is echoed in the
    X-Request-ID response header and stored in the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern

Both have the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics reads the route pattern after the request has been
routed, so it must be installed on the router (r.Use), not wrapped around
it.
*/
package middleware
