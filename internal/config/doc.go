// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

/*
Package config provides centralized configuration management for What2Eat.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The file is found through CONFIG_PATH
or the first existing entry of DefaultConfigPaths.

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeouts, environment)
  - SecurityConfig: CORS origins and per-IP rate limits
  - LoggingConfig: zerolog level, format and caller flag
  - WeatherConfig: OpenWeather key, base URL, cache and outbound rate
  - SessionConfig: session store backend (memory or badger), TTL, cleanup
  - CatalogConfig: optional catalog file replacing the embedded one
  - recommend.Config: scoring points, filter thresholds, pool and draw shape

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT

Security:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Weather:
  - OPENWEATHER_API_KEY, OPENWEATHER_BASE_URL, WEATHER_TIMEOUT,
    WEATHER_CACHE_TTL, WEATHER_RATE_PER_MINUTE, WEATHER_BURST

Sessions:
  - SESSION_STORE, SESSION_STORE_PATH, SESSION_TTL, SESSION_CLEANUP_INTERVAL

Catalog and engine:
  - CATALOG_PATH
  - RECOMMEND_SEED, RECOMMEND_ALTERNATIVES, RECOMMEND_POSITIVE_POOL_SIZE,
    RECOMMEND_FALLBACK_POOL_SIZE, RECOMMEND_EXPONENT, RECOMMEND_FLOOR,
    RECOMMEND_HOT_AT, RECOMMEND_COLD_AT, RECOMMEND_WEATHER_BONUS

Environment variables not in the mapping table are ignored.

# Example YAML

	server:
	  port: 8080
	weather:
	  api_key: "..."
	  cache_ttl: 10m
	session:
	  store: badger
	  store_path: /data/sessions
	recommend:
	  selection:
	    alternatives: 3

# Thread Safety

Config is read-only after loading and safe to share between goroutines.
*/
package config
