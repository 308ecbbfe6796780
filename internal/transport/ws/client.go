package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/pushchat-client/internal/proto"
	"github.com/vovakirdan/pushchat-client/internal/transport"
)

// Options configures the websocket client.
type Options struct {
	URL               string
	DialTimeout       time.Duration
	ReconnectMinDelay time.Duration
	ReconnectMaxDelay time.Duration
}

// Client maintains a websocket connection to the server, redialing with
// capped exponential backoff when it drops. A single read loop delivers
// inbound envelopes, so arrival order is preserved end to end.
type Client struct {
	opts     Options
	handlers transport.Handlers
	log      *zerolog.Logger

	mu      sync.Mutex
	conn    *websocket.Conn
	connCtx context.Context
}

// New constructs a client; Run must be called to start connecting.
func New(opts Options, handlers transport.Handlers, logger *zerolog.Logger) *Client {
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 10 * time.Second
	}
	if opts.ReconnectMinDelay == 0 {
		opts.ReconnectMinDelay = 500 * time.Millisecond
	}
	if opts.ReconnectMaxDelay == 0 {
		opts.ReconnectMaxDelay = 30 * time.Second
	}
	return &Client{opts: opts, handlers: handlers, log: logger}
}

// Run dials the server and keeps the connection alive until ctx is
// cancelled. Each lost connection triggers OnDisconnected and a redial.
func (c *Client) Run(ctx context.Context) error {
	delay := c.opts.ReconnectMinDelay

	for {
		attempt := uuid.NewString()
		c.log.Debug().Str("attempt", attempt).Str("url", c.opts.URL).Msg("dialing")
		if c.handlers.OnConnecting != nil {
			c.handlers.OnConnecting()
		}

		err := c.connectAndServe(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if c.handlers.OnDisconnected != nil {
			c.handlers.OnDisconnected(err)
		}
		if err != nil {
			c.log.Warn().Err(err).Str("attempt", attempt).Msg("connection lost")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > c.opts.ReconnectMaxDelay {
			delay = c.opts.ReconnectMaxDelay
		}
		if err == nil {
			delay = c.opts.ReconnectMinDelay
		}
	}
}

// connectAndServe performs one dial and reads until the connection dies.
func (c *Client) connectAndServe(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, c.opts.DialTimeout)
	conn, _, err := websocket.Dial(dialCtx, c.opts.URL, nil)
	cancel()
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusInternalError, "closing")

	// The first frame carries the assigned connection id.
	var hello proto.Envelope
	if err := wsjson.Read(ctx, conn, &hello); err != nil {
		return fmt.Errorf("read connect frame: %w", err)
	}
	if hello.Event != proto.EventConnect {
		return fmt.Errorf("expected %s frame, got %s", proto.EventConnect, hello.Event)
	}
	var connect proto.ConnectData
	if err := json.Unmarshal(hello.Data, &connect); err != nil {
		return fmt.Errorf("decode connect frame: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connCtx = ctx
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.connCtx = nil
		c.mu.Unlock()
	}()

	if c.handlers.OnConnected != nil {
		c.handlers.OnConnected(connect.ID)
	}

	return c.readLoop(ctx, conn)
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		var env proto.Envelope
		if err := wsjson.Read(ctx, conn, &env); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		if c.handlers.OnEvent != nil {
			c.handlers.OnEvent(env.Event, env.Data)
		}
	}
}

// Emit sends one named intent. Returns ErrNotConnected while the link is
// down; callers do not retry, the user re-attempts after reconnect.
func (c *Client) Emit(event string, payload any) error {
	env, err := proto.NewEnvelope(event, payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return transport.ErrNotConnected
	}
	if err := wsjson.Write(c.connCtx, c.conn, env); err != nil {
		return fmt.Errorf("emit %s: %w", event, err)
	}
	return nil
}

// Close shuts the current connection down cleanly.
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close(websocket.StatusNormalClosure, "client closed")
}
