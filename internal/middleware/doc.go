// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging context
  - Prometheus Metrics: request counts, durations and in-flight gauge per route
  - Access Log: one structured zerolog line per request

All middleware has the chi signature func(http.Handler) http.Handler and is
installed with r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)

Route labels use the chi route pattern ("/api/v1/courses/{courseID}") rather
than the raw path, so metric cardinality stays bounded.
*/
package middleware
