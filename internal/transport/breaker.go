// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package transport

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/tomtom215/curriculum/internal/config"
	"github.com/tomtom215/curriculum/internal/logging"
	"github.com/tomtom215/curriculum/internal/metrics"
)

// BreakerFetcher wraps a Fetcher with a circuit breaker so a failing content
// host is not hammered with one request per lesson while it is down.
//
// Missing resources count as successes; only transport failures trip it.
// While open, Fetch fails immediately with gobreaker.ErrOpenState.
type BreakerFetcher struct {
	next Fetcher
	cb   *gobreaker.CircuitBreaker[[]byte]
	name string
}

// NewBreakerFetcher wraps next.
func NewBreakerFetcher(name string, next Fetcher, cfg config.CircuitBreakerConfig) *BreakerFetcher {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	log := logging.WithComponent("transport")

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= threshold
			if trip {
				log.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsNotFound(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().Str("breaker", name).Str("from", stateToString(from)).Str("to", stateToString(to)).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
		},
	})

	return &BreakerFetcher{next: next, cb: cb, name: name}
}

// Fetch runs the wrapped fetch through the breaker.
func (b *BreakerFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	data, err := b.cb.Execute(func() ([]byte, error) {
		return b.next.Fetch(ctx, path)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	case err != nil && !IsNotFound(err):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	}
	return data, err
}

// State returns the breaker state as a string.
func (b *BreakerFetcher) State() string {
	return stateToString(b.cb.State())
}

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
