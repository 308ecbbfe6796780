package app

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/pushchat-client/internal/config"
	"github.com/vovakirdan/pushchat-client/internal/core"
	"github.com/vovakirdan/pushchat-client/internal/transport"
	"github.com/vovakirdan/pushchat-client/internal/transport/ws"
)

// App wires the transport and the synchronization core together.
type App struct {
	cfg    config.Config
	log    *zerolog.Logger
	sync   *core.Synchronizer
	client *ws.Client
}

// New constructs the application with the provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	a := &App{cfg: cfg, log: logger}

	a.client = ws.New(ws.Options{
		URL:               cfg.ServerURL,
		DialTimeout:       cfg.DialTimeout,
		ReconnectMinDelay: cfg.ReconnectMinDelay,
		ReconnectMaxDelay: cfg.ReconnectMaxDelay,
	}, transport.Handlers{
		OnConnecting:   a.onConnecting,
		OnConnected:    a.onConnected,
		OnDisconnected: a.onDisconnected,
		OnEvent:        a.onEvent,
	}, logger)

	a.sync = core.NewSynchronizer(a.client, logger)
	return a
}

// Sync exposes the synchronizer for intent calls and snapshots.
func (a *App) Sync() *core.Synchronizer {
	return a.sync
}

// Run connects to the server and keeps the connection alive until ctx is
// cancelled. The transport owns retry; the core only sees lifecycle
// callbacks.
func (a *App) Run(ctx context.Context) error {
	err := a.client.Run(ctx)
	if closeErr := a.client.Close(); closeErr != nil {
		a.log.Warn().Err(closeErr).Msg("close transport")
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) onConnecting() {
	a.sync.HandleConnecting()
}

func (a *App) onConnected(connID string) {
	a.sync.HandleConnected(connID)

	// Re-announce the chosen username: identity persists across
	// reconnects even though the server forgot us.
	if name := a.sync.Snapshot().Self.Username; name != "" {
		if err := a.sync.SetUsername(name); err != nil {
			a.log.Warn().Err(err).Msg("re-announce username")
		}
	} else if a.cfg.Username != "" {
		if err := a.sync.SetUsername(a.cfg.Username); err != nil {
			a.log.Warn().Err(err).Msg("announce username")
		}
	}
}

func (a *App) onDisconnected(err error) {
	a.sync.HandleDisconnected(err)
}

func (a *App) onEvent(event string, data json.RawMessage) {
	if err := a.sync.HandleInbound(event, data); err != nil {
		a.log.Warn().Err(err).Str("event", event).Msg("drop inbound event")
	}
}
