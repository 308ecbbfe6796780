package core

// ConnectionState is the lifecycle stage of the client's server link.
type ConnectionState int

const (
	// StateDisconnected means there is no live connection.
	StateDisconnected ConnectionState = iota

	// StateConnecting means the transport is establishing a connection.
	StateConnecting

	// StateConnected means the link is up but the initial snapshot
	// has not arrived yet.
	StateConnected

	// StateSynced means the initial snapshot has been applied and the
	// local view tracks the server stream.
	StateSynced
)

// String returns the string representation of a ConnectionState.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateSynced:
		return "synced"
	default:
		return "unknown"
	}
}
