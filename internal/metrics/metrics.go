// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Content cache metrics
	ContentCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_lookups_total",
			Help: "Content store cache lookups by layer and result",
		},
		[]string{"layer", "result"}, // result: "hit", "miss"
	)

	ContentCacheResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "content_cache_resets_total",
			Help: "Explicit resets of every content cache layer",
		},
	)

	// Transport metrics
	ContentFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_total",
			Help: "Content transport fetches by outcome",
		},
		[]string{"outcome"}, // "ok", "not_found", "error"
	)

	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_fetch_duration_seconds",
			Help:    "Latency of content transport fetches",
			Buckets: prometheus.DefBuckets,
		},
	)

	ContentSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_items_skipped_total",
			Help: "Items skipped while loading because they were missing or malformed",
		},
		[]string{"kind", "reason"}, // kind: course, module, lesson, exercise
	)

	// Search metrics
	SearchExecutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_executions_total",
			Help: "Search worker executions by result",
		},
		[]string{"result"}, // "empty_query", "cache_hit", "collaborator", "error"
	)

	SearchSuperseded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_debounce_superseded_total",
			Help: "Debounced searches discarded because a newer call replaced them",
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_collaborator_duration_seconds",
			Help:    "Latency of search collaborator calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	SearchIndexDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_index_documents",
			Help: "Documents in the in-memory search index",
		},
	)

	SearchSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_sessions_active",
			Help: "Open search-as-you-type websocket sessions",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "HTTP API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "In-flight HTTP API requests",
		},
	)
)

// RecordCacheLookup records one content cache lookup.
func RecordCacheLookup(layer string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	ContentCacheLookups.WithLabelValues(layer, result).Inc()
}

// RecordFetch records a transport fetch outcome and latency.
func RecordFetch(outcome string, duration time.Duration) {
	ContentFetchTotal.WithLabelValues(outcome).Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordSkipped records an item dropped under the degrade-to-empty policy.
func RecordSkipped(kind, reason string) {
	ContentSkipped.WithLabelValues(kind, reason).Inc()
}

// RecordSearch records one search worker execution.
func RecordSearch(result string) {
	SearchExecutions.WithLabelValues(result).Inc()
}

// RecordAPIRequest records an API request.
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
