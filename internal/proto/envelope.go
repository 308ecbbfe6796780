package proto

import "encoding/json"

// Envelope wraps every frame on the wire, in both directions.
// The event name selects the payload shape carried in Data.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound event names (server -> client).
const (
	EventConnect          = "connect"
	EventInitialData      = "initial_data"
	EventMessage          = "message"
	EventExistingMessages = "existing_messages"
	EventUpdatedRooms     = "updated_rooms"
	EventUpdatedUsers     = "updated_users"
	EventErrorStatus      = "error_status"
)

// Outbound intent names (client -> server).
const (
	IntentSetUsername = "set_username"
	IntentCreateRoom  = "create_room"
	IntentJoinRoom    = "join_room"
	IntentRemoveRoom  = "remove_room"
	IntentMessage     = "message"
	IntentIsWriting   = "is_writing"
)

// NewEnvelope marshals payload into an Envelope for the given event.
func NewEnvelope(event string, payload any) (Envelope, error) {
	if payload == nil {
		return Envelope{Event: event}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Event: event, Data: data}, nil
}
