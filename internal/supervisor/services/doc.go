// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

/*
Package services provides suture.Service wrappers for Curriculum components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor events name it.

HTTPServerService:
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe into Serve

IndexRefreshService:
  - Builds the search index (or warms the content caches) on start
  - Rebuilds on a fixed interval when one is configured, calling the Refresh
    hook first so the rebuild reads fresh content
  - Failed rebuilds are logged and retried on the next tick; the last good
    index keeps serving

Services return ctx.Err() on shutdown and a wrapped error on failure, which
lets the supervisor decide whether to restart them.
*/
package services
