// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

/*
Package websocket serves search-as-you-type sessions over gorilla/websocket.

Each connection gets its own Client bound to its own search.Query, so the
debounce slot, result cache and recent searches are per session. There is no
hub: sessions never broadcast to each other.

Each client has two goroutines:
  - readPump: decodes requests and drives the query
  - writePump: writes published states and keeps the connection alive with pings

Client to server:

	{"action": "search", "query": "gorout", "options": {"types": ["lesson"]}}
	{"action": "page", "page": 2, "options": {"pageSize": 20}}
	{"action": "ping"}

Server to client:

	{"type": "state", "data": {"query": "gorout", "loading": true, ...}}
	{"type": "pong"}
	{"type": "error", "data": "unknown action reload"}

A search publishes a loading state immediately and the results once the
debounce delay has passed without a newer search. Superseded searches publish
nothing further.
*/
package websocket
