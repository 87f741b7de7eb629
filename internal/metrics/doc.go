// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

// Package metrics registers the Prometheus collectors exported on /metrics.
//
// Collectors are package-level promauto variables; code records through the
// Record* helpers so label values stay consistent.
//
// Families:
//
//   - content_cache_*: per-layer cache lookups in the content store
//   - content_fetch_*: transport fetch outcomes and latency
//   - search_*: executions, cache hits, superseded debounced calls, index size
//   - circuit_breaker_*: transport breaker state
//   - api_*: HTTP request counts, latency and in-flight requests
package metrics
