// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package api provides the HTTP REST API layer for What2Eat.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for every endpoint
  - Response formatting: the models.APIResponse envelope with metadata
  - Error handling: domain errors mapped to status codes and error codes
  - Rate limiting: per-IP limits per route group via go-chi/httprate
  - CORS: go-chi/cors, origins from configuration

API Categories:

1. Health (/api/v1/health): service, liveness and readiness status.

2. Catalog (/api/v1/steps, /api/v1/menus): the questionnaire definition
and the menu catalog.

3. Stateless recommendation (/api/v1/recommend, /api/v1/reason,
/api/v1/weather): the caller holds the answers and sends them with every
request.

4. Sessions (/api/v1/sessions): the server holds the answers. A session
moves through the steps with select, next, prev, skip and reset, loads the
weather once, and produces recommendations with recommend and retry.

5. Observability: /metrics (Prometheus) and /swagger/* (OpenAPI UI).

Error Codes:

	VALIDATION_ERROR     400  malformed body or unknown tag
	INVALID_STEP         400  unknown step or option, or skip on a required step
	NOT_FOUND            404  unknown route or menu item
	SESSION_NOT_FOUND    404  unknown or expired session
	METHOD_NOT_ALLOWED   405
	RATE_LIMIT_EXCEEDED  429
	INTERNAL_ERROR       500

Usage Example:

	handler := api.NewHandler(engine, weatherClient, manager, catalog, cfg)
	router := api.NewRouter(handler, &cfg.Security)
	srv := &http.Server{Addr: ":8080", Handler: router.SetupChi()}
*/
package api
