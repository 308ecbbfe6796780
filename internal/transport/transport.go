package transport

import (
	"encoding/json"
	"errors"
)

// ErrNotConnected is returned by Emit while no connection is live.
var ErrNotConnected = errors.New("not connected")

// Transport is the bidirectional channel to the server. Implementations
// own retry and backoff of the underlying connection; consumers only react
// to the callbacks and call Emit.
type Transport interface {
	// Emit sends one named intent with a JSON payload, fire-and-forget.
	Emit(event string, payload any) error
	// Close tears the connection down and stops reconnecting.
	Close() error
}

// Handlers receives connection lifecycle changes and inbound push events.
// Callbacks are invoked from a single goroutine, in arrival order.
type Handlers struct {
	// OnConnecting fires when a connection attempt starts.
	OnConnecting func()
	// OnConnected fires once the server has assigned a connection id.
	OnConnected func(connID string)
	// OnDisconnected fires when a live connection is lost. err is nil for
	// an orderly close.
	OnDisconnected func(err error)
	// OnEvent fires for every named push event after connect.
	OnEvent func(event string, data json.RawMessage)
}
