// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package websocket

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtom215/curriculum/internal/logging"
	"github.com/tomtom215/curriculum/internal/metrics"
	"github.com/tomtom215/curriculum/internal/search"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024 // 64 KB
	sendBuffer     = 64
)

// Actions a client may send.
const (
	ActionSearch = "search"
	ActionPage   = "page"
	ActionPing   = "ping"
)

// Message types sent to the client.
const (
	MessageTypeState = "state"
	MessageTypePong  = "pong"
	MessageTypeError = "error"
)

// Request is a client message. Search uses Query and Options, page uses Page
// and Options and repeats the session's current query.
type Request struct {
	Action  string         `json:"action"`
	Query   string         `json:"query,omitempty"`
	Page    int            `json:"page,omitempty"`
	Options search.Options `json:"options"`
}

// Message is a server message. Data is a search.State for state messages and
// a string for errors.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

var clientIDCounter atomic.Uint64

// Client is one search-as-you-type session: a websocket connection bound to
// its own search.Query. Every state the query publishes is pushed to the
// connection.
type Client struct {
	id     uint64
	conn   *websocket.Conn
	query  *search.Query
	send   chan Message
	done   chan struct{}
	once   sync.Once
	logger zerolog.Logger
}

// NewClient binds conn to query. query should not be shared with other
// connections.
func NewClient(conn *websocket.Conn, query *search.Query) *Client {
	id := clientIDCounter.Add(1)
	return &Client{
		id:     id,
		conn:   conn,
		query:  query,
		send:   make(chan Message, sendBuffer),
		done:   make(chan struct{}),
		logger: logging.WithComponent("search-ws").With().Uint64("client_id", id).Logger(),
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// Done is closed once the connection has been torn down.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Start subscribes to the query, pushes the current state and begins reading
// and writing. Searches run under a child of ctx that is canceled when the
// connection closes, so ctx must not be a request context that ends when the
// upgrade handler returns.
func (c *Client) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	unsubscribe := c.query.Subscribe(func(s search.State) {
		c.push(Message{Type: MessageTypeState, Data: s})
	})
	c.push(Message{Type: MessageTypeState, Data: c.query.Snapshot()})

	metrics.SearchSessionsActive.Inc()
	c.logger.Debug().Msg("search session opened")

	go c.writePump()
	go func() {
		defer func() {
			unsubscribe()
			cancel()
			c.close()
			metrics.SearchSessionsActive.Dec()
			c.logger.Debug().Msg("search session closed")
		}()
		c.readPump(ctx)
	}()
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close() // best-effort cleanup
	})
}

// push queues msg for the writer. Messages are dropped once the connection is
// gone or when the client stops draining its buffer.
func (c *Client) push(msg Message) {
	select {
	case <-c.done:
	case c.send <- msg:
	default:
		c.logger.Warn().Str("type", msg.Type).Msg("search session send buffer full, dropping message")
	}
}

// readPump turns client requests into query calls until the connection fails.
func (c *Client) readPump(ctx context.Context) {
	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var req Request
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("unexpected websocket close")
			}
			return
		}

		switch req.Action {
		case ActionSearch:
			c.query.PerformSearch(ctx, req.Query, req.Options)
		case ActionPage:
			c.query.ChangePage(ctx, req.Page, req.Options)
		case ActionPing:
			c.push(Message{Type: MessageTypePong})
		default:
			c.push(Message{Type: MessageTypeError, Data: "unknown action " + req.Action})
		}
	}
}

// writePump drains the send buffer to the connection and keeps it alive with
// pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			return

		case msg := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("failed to set write deadline")
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug().Err(err).Msg("failed to write message")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Error().Err(err).Msg("failed to set write deadline for ping")
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
