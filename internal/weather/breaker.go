// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package weather

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/what2eat/internal/metrics"
)

// BreakerName labels the OpenWeather circuit breaker in metrics and logs.
const BreakerName = "openweather-api"

// breaker wraps a gobreaker.CircuitBreaker and keeps the circuit breaker
// metrics current.
//
// Breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
type breaker struct {
	cb   *gobreaker.CircuitBreaker[Report]
	name string
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newBreaker(name string, logger zerolog.Logger) *breaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[Report](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening circuit")
			}
			return shouldTrip
		},

		// The caller giving up is not an upstream failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerGone)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &breaker{cb: cb, name: name}
}

// execute runs fn through the breaker and records the outcome.
func (b *breaker) execute(fn func() (Report, error)) (Report, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		switch {
		case isRejected(err):
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		case errors.Is(err, errCallerGone):
		default:
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		}
		return Report{}, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

func (b *breaker) state() gobreaker.State {
	return b.cb.State()
}

func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
