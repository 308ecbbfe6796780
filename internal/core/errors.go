package core

import "errors"

// Error codes surfaced alongside sentinel errors.
const (
	ErrCodeNoRoomSelected = "no_room_selected"
	ErrCodeEmptyMessage   = "empty_message"
	ErrCodeEmptyName      = "empty_name"
	ErrCodeUnknownEvent   = "unknown_event"
)

var (
	// ErrNoRoomSelected is returned by intents that require a current room.
	ErrNoRoomSelected = errors.New("no room selected")
	// ErrEmptyMessage is returned when sending a blank message.
	ErrEmptyMessage = errors.New("empty message")
	// ErrEmptyName is returned when an intent needs a non-empty name.
	ErrEmptyName = errors.New("empty name")
	// ErrUnknownEvent is returned for inbound events outside the dispatch table.
	ErrUnknownEvent = errors.New("unknown event")
)
