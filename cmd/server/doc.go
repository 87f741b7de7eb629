// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

/*
Package main is the entry point for the Curriculum server.

Curriculum serves course content (courses, modules, lessons and exercises)
from a static content tree, together with related-content recommendations,
learning paths and paginated search, as a JSON HTTP API. Search-as-you-type
clients can hold a websocket session on /api/v1/search/ws instead of polling.

# Application Architecture

	RootSupervisor ("curriculum")
	├── ContentSupervisor ("content-layer")
	│   └── IndexRefreshService (bleve index build, or cache warm-up;
	│       caches are dropped before each scheduled rebuild)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Component initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Transport: filesystem or HTTP fetcher, with rate limiting and a circuit breaker
 4. Content store: layered caches over the fetcher
 5. Recommendation resolver and search query over the store's corpus
 6. HTTP router (chi) and the supervisor tree

# Content Source

The content tree is read from CONTENT_ROOT_DIR (default ./content), or from
CONTENT_BASE_URL when set:

	courses/{course}/meta.json
	courses/{course}/README.md
	courses/{course}/modules/{module}/meta.json
	courses/{course}/modules/{module}/lessons/{lesson}.md
	exercises/{category}/{exercise}.md

# Example Usage

	export CONTENT_ROOT_DIR=/srv/curriculum
	export SEARCH_BACKEND=bleve
	export SEARCH_INDEX_REFRESH=15m
	./curriculum

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to SHUTDOWN_TIMEOUT before the process exits.
*/
package main
