// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

/*
Package api exposes course content, recommendations and search over HTTP.

Routes are served by a chi router under /api/v1. Every JSON response uses the
envelope

	{"success": true, "data": ..., "meta": {"request_id": ..., "timestamp": ...}}

or, on failure,

	{"success": false, "error": {"code": "NOT_FOUND", "message": ...}, "meta": ...}

Content that cannot be loaded is reported as 404; malformed query parameters
are reported as 400 with code VALIDATION_ERROR or BAD_REQUEST. Lesson ids
contain slashes, so endpoints that take an arbitrary content id read it from
the query string (?id=go-basics/intro/setup) rather than the path.

GET /api/v1/search/ws upgrades to a websocket search session (see package
websocket). Browser origins are checked against the configured CORS origins.

Middleware stack (outermost first): request id, real IP, panic recovery, CORS,
access log, Prometheus metrics, rate limiting.
*/
package api
