// Package socket is the websocket transport client. Frames are JSON
// envelopes {"t": event name, "d": payload}. A single reader goroutine
// invokes handlers synchronously, so events from one connection are always
// delivered in order. No deduplication and no sequence numbers: duplicate or
// stale events are the store's problem, and its upsert/patch semantics are
// the only protection.
package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Local synthetic events, emitted by the client itself rather than the
// server.
const (
	EventConnected        = "connected"
	EventReconnectAttempt = "reconnect_attempt"
)

const (
	handshakeTimeout = 10 * time.Second
	maxReconnectWait = 30 * time.Second
)

type frame struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d"`
}

type Client struct {
	url   string
	sugar *zap.SugaredLogger

	handlerMutex sync.RWMutex
	handlers     map[string][]func(json.RawMessage)

	writeMutex sync.Mutex
	conn       *websocket.Conn

	cancel context.CancelFunc
	done   chan struct{}
}

func New(url string, sugar *zap.SugaredLogger) *Client {
	return &Client{
		url:      url,
		sugar:    sugar,
		handlers: make(map[string][]func(json.RawMessage)),
		done:     make(chan struct{}),
	}
}

// On registers fn for the named event. Registration is expected to happen
// before Connect; handlers run on the reader goroutine.
func (c *Client) On(event string, fn func(payload json.RawMessage)) {
	c.handlerMutex.Lock()
	defer c.handlerMutex.Unlock()

	c.handlers[event] = append(c.handlers[event], fn)
}

func (c *Client) emit(event string, payload json.RawMessage) {
	c.handlerMutex.RLock()
	fns := c.handlers[event]
	c.handlerMutex.RUnlock()

	for _, fn := range fns {
		fn(payload)
	}
}

// Connect dials the server and starts the read loop. The read loop keeps
// reconnecting with capped backoff until ctx is cancelled or Close is
// called.
func (c *Client) Connect(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.writeMutex.Lock()
	c.cancel = cancel
	c.writeMutex.Unlock()

	conn, err := c.dial(ctx)
	if err != nil {
		cancel()
		return err
	}
	c.setConn(conn)
	c.emit(EventConnected, nil)

	go c.run(ctx)
	return nil
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", c.url, err)
	}
	return conn, nil
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	for {
		c.readLoop()

		wait := time.Second
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}

			c.emit(EventReconnectAttempt, nil)
			conn, err := c.dial(ctx)
			if err == nil {
				c.setConn(conn)
				c.emit(EventConnected, nil)
				break
			}
			c.sugar.Warnw("reconnect failed", "error", err)

			wait *= 2
			if wait > maxReconnectWait {
				wait = maxReconnectWait
			}
		}
	}
}

func (c *Client) readLoop() {
	conn := c.getConn()
	if conn == nil {
		return
	}
	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			c.sugar.Debugw("socket read ended", "error", err)
			conn.Close()
			return
		}
		c.emit(f.T, f.D)
	}
}

// Send writes one event frame. Safe for concurrent use.
func (c *Client) Send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	if c.conn == nil {
		return fmt.Errorf("socket is not connected")
	}
	return c.conn.WriteJSON(frame{T: event, D: data})
}

// Authenticate sends the auth frame for the current connection. The server
// answers with USER_AUTHENTICATED or AUTHENTICATE_ERROR.
func (c *Client) Authenticate(token string) error {
	return c.Send("AUTHENTICATE", struct {
		Token string `json:"token"`
	}{Token: token})
}

// Close is safe to call at any point, including concurrently with Connect;
// cancel lives under writeMutex together with conn.
func (c *Client) Close() {
	c.writeMutex.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	c.writeMutex.Unlock()
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()
	c.conn = conn
}

func (c *Client) getConn() *websocket.Conn {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()
	return c.conn
}
