// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/curriculum/internal/logging"
	ws "github.com/tomtom215/curriculum/internal/websocket"
)

// upgrader creates a WebSocket upgrader with origin checking and a handshake
// timeout.
func (h *Handler) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts browser origins listed in the allowed origins.
// With no list configured every origin is accepted. Requests without an
// Origin header come from non-browser clients and are accepted too.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.wsOrigins) == 0 {
		return true
	}
	for _, allowed := range h.wsOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	logging.Ctx(r.Context()).Warn().
		Str("origin", strings.ReplaceAll(origin, "\n", "")).
		Msg("Search session rejected from unauthorized origin")
	return false
}

// SearchSession upgrades to a websocket carrying one search-as-you-type
// session. Each connection gets its own query state and result cache.
func (h *Handler) SearchSession(w http.ResponseWriter, r *http.Request) {
	upgrader := h.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Search session upgrade failed")
		return
	}

	client := ws.NewClient(conn, h.query.NewSession())
	// The request context ends when this handler returns; the session keeps
	// its logging values but not its cancellation.
	client.Start(context.WithoutCancel(r.Context()))
}
