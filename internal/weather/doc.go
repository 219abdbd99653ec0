// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

// Package weather turns current weather into recommendation context.
//
// ContextTag and Message are pure: the first maps temperature and condition
// to an implicit context tag (비, 더운날, 추운날), the second picks start
// screen flavor text. Client proxies OpenWeather's current-weather endpoint
// and never fails; when the key is missing, the coordinates are invalid or
// the upstream misbehaves it returns the dummy report {22, "Clear"}.
//
// Client call order:
//
//	API key -> coordinate validation -> TTL cache -> token bucket
//	        -> circuit breaker -> HTTP GET
package weather
