// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/curriculum/internal/cache"
	"github.com/tomtom215/curriculum/internal/logging"
)

// LiveStatus is the payload of GET /health/live.
type LiveStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(LiveStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// CacheResetResult is the payload of POST /cache/reset.
type CacheResetResult struct {
	Reset        bool          `json:"reset"`
	IndexRebuilt bool          `json:"index_rebuilt"`
	Layers       []cache.Stats `json:"layers"`
}

// ResetCaches clears every content cache layer and the search result cache,
// then rebuilds the search index when one is configured.
func (h *Handler) ResetCaches(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx := r.Context()

	h.store.Reset()
	h.query.ClearSearchCache()

	result := CacheResetResult{Reset: true}
	if h.rebuilder != nil {
		if err := h.rebuilder.Rebuild(ctx); err != nil {
			logging.Ctx(ctx).Error().Err(err).Msg("Search index rebuild after cache reset failed")
			rw.InternalError("Caches were reset but the search index could not be rebuilt")
			return
		}
		result.IndexRebuilt = true
	}
	result.Layers = h.store.CacheStats()

	logging.Ctx(ctx).Info().Bool("index_rebuilt", result.IndexRebuilt).Msg("Content caches reset")
	rw.Success(result)
}
