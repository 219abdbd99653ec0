// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package main is the entry point for the What2Eat server.

# Application Architecture

	RootSupervisor ("what2eat")
	├── DataSupervisor ("data-layer")
	│   ├── session janitor
	│   ├── BadgerDB value log GC (SESSION_STORE=badger)
	│   └── weather cache sweeper
	└── APISupervisor ("api-layer")
	    └── HTTP server

Initialization order:

 1. Configuration: Koanf v2 (defaults, optional YAML, environment)
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Catalog: embedded menu catalog or CATALOG_PATH
 4. Recommendation engine
 5. Weather client: OpenWeather with cache, rate limiter and circuit breaker
 6. Session store: memory or BadgerDB
 7. HTTP router: chi with CORS, rate limiting, metrics and Swagger UI
 8. Supervisor tree

# Configuration

	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	OPENWEATHER_API_KEY=         # empty: dummy weather
	SESSION_STORE=memory         # memory or badger
	SESSION_STORE_PATH=/data/sessions
	CATALOG_PATH=                # empty: embedded catalog
	CORS_ORIGINS=*

A YAML file may be given with CONFIG_PATH.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up to
SHUTDOWN_TIMEOUT, then the session store is closed.
*/
package main
