package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/pushchat-client/internal/proto"
)

// Emitter is the outbound half of the transport collaborator. Emissions
// are fire-and-forget; confirmations arrive as separate broadcasts.
type Emitter interface {
	Emit(event string, payload any) error
}

// Snapshot is a consistent copy of the client view at one instant.
type Snapshot struct {
	State        ConnectionState
	Self         Identity
	CurrentRoom  string
	Rooms        []Room
	Users        []Participant
	Messages     []Message // newest first
	Errors       ErrorFlags
	WritingLabel string
}

// Synchronizer ingests server push events and local intents and keeps the
// stores consistent. All handlers are serialized and run to completion;
// inbound events are applied exactly once, in arrival order.
type Synchronizer struct {
	mu sync.Mutex

	emitter Emitter
	log     *zerolog.Logger

	state       ConnectionState
	self        Identity
	currentRoom string

	rooms    *Directory
	presence *Presence
	timeline *Timeline
	errors   *ErrorSurface

	dispatch map[string]func(json.RawMessage) error
}

// NewSynchronizer constructs a synchronizer that emits intents through the
// given emitter.
func NewSynchronizer(emitter Emitter, logger *zerolog.Logger) *Synchronizer {
	s := &Synchronizer{
		emitter:  emitter,
		log:      logger,
		state:    StateDisconnected,
		rooms:    NewDirectory(),
		presence: NewPresence(),
		timeline: NewTimeline(),
		errors:   NewErrorSurface(),
	}
	s.dispatch = map[string]func(json.RawMessage) error{
		proto.EventInitialData:      s.applyInitialData,
		proto.EventMessage:          s.applyMessage,
		proto.EventExistingMessages: s.applyExistingMessages,
		proto.EventUpdatedRooms:     s.applyUpdatedRooms,
		proto.EventUpdatedUsers:     s.applyUpdatedUsers,
		proto.EventErrorStatus:      s.applyErrorStatus,
	}
	return s
}

// HandleConnecting marks the start of a connection attempt.
func (s *Synchronizer) HandleConnecting() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateConnecting
}

// HandleConnected rebinds the identity to the freshly assigned connection
// id. The chosen username is kept across reconnects.
func (s *Synchronizer) HandleConnected(connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.self.Rebind(connID)
	s.state = StateConnected
	s.log.Info().Str("conn_id", connID).Msg("connected")
}

// HandleDisconnected resets transient state: current room, timeline and
// presence set are cleared atomically. The username and the cached room
// directory survive until a fresh initial_data arrives.
func (s *Synchronizer) HandleDisconnected(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentRoom = ""
	s.timeline.Clear()
	s.presence.Clear()
	s.state = StateDisconnected

	evt := s.log.Info()
	if err != nil {
		evt = s.log.Warn().Err(err)
	}
	evt.Msg("disconnected")
}

// HandleInbound applies one server push event to the stores.
func (s *Synchronizer) HandleInbound(event string, data json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply, ok := s.dispatch[event]
	if !ok {
		s.log.Warn().Str("event", event).Msg("unknown inbound event")
		return fmt.Errorf("%w: %s", ErrUnknownEvent, event)
	}
	if err := apply(data); err != nil {
		return fmt.Errorf("apply %s: %w", event, err)
	}
	s.log.Debug().Str("event", event).Msg("inbound applied")
	return nil
}

func (s *Synchronizer) applyInitialData(data json.RawMessage) error {
	var payload proto.InitialData
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	s.rooms.ReplaceAll(roomsFromProto(payload.Rooms))
	s.presence.ReplaceAll(participantsFromProto(payload.Users))
	s.ensureCurrentRoomExists()
	s.state = StateSynced
	return nil
}

func (s *Synchronizer) applyMessage(data json.RawMessage) error {
	var payload proto.Message
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	s.timeline.AppendLive(messageFromProto(payload))
	return nil
}

func (s *Synchronizer) applyExistingMessages(data json.RawMessage) error {
	var payload []proto.Message
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	s.timeline.LoadHistory(messagesFromProto(payload))
	return nil
}

func (s *Synchronizer) applyUpdatedRooms(data json.RawMessage) error {
	var payload []proto.Room
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	s.rooms.ReplaceAll(roomsFromProto(payload))
	s.ensureCurrentRoomExists()
	return nil
}

func (s *Synchronizer) applyUpdatedUsers(data json.RawMessage) error {
	var payload []proto.Participant
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	s.presence.ReplaceAll(participantsFromProto(payload))
	return nil
}

func (s *Synchronizer) applyErrorStatus(data json.RawMessage) error {
	var payload proto.ErrorStatus
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	s.errors.Apply(ErrorUpdate{
		RoomCreationConflict: payload.CreateRoom,
		EmptyMessage:         payload.Message,
	})
	return nil
}

// ensureCurrentRoomExists enforces the invariant that the current room is
// either unset or present in the directory. Callers must hold the lock.
func (s *Synchronizer) ensureCurrentRoomExists() {
	if s.currentRoom == "" {
		return
	}
	if !s.rooms.Contains(s.currentRoom) {
		s.log.Info().Str("room_id", s.currentRoom).Msg("current room removed, leaving")
		s.currentRoom = ""
	}
}

// SetUsername records the display name locally and announces it.
func (s *Synchronizer) SetUsername(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	s.self.SetUsername(name)
	s.mu.Unlock()

	return s.emitter.Emit(proto.IntentSetUsername, name)
}

// CreateRoom asks the server to create a room. No local state changes
// until the round-trip returns: creation can be rejected on a name
// conflict, reported through an error_status broadcast.
func (s *Synchronizer) CreateRoom(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return s.emitter.Emit(proto.IntentCreateRoom, name)
}

// JoinRoom switches the current room optimistically: the local view
// updates before the server hears about it, since joining has no
// rejection path. Joining the current room is a no-op.
func (s *Synchronizer) JoinRoom(roomID string) error {
	s.mu.Lock()
	if roomID == s.currentRoom {
		s.mu.Unlock()
		return nil
	}
	s.currentRoom = roomID
	s.mu.Unlock()

	return s.emitter.Emit(proto.IntentJoinRoom, roomID)
}

// RemoveRoom asks the server to delete a room. The directory changes only
// when the updated_rooms broadcast comes back.
func (s *Synchronizer) RemoveRoom(roomID string) error {
	return s.emitter.Emit(proto.IntentRemoveRoom, roomID)
}

// SendMessage delivers text to the current room. A blank message or a
// missing room selection raises the empty-message flag without emitting;
// the server reports its own verdict through error_status.
func (s *Synchronizer) SendMessage(text string) error {
	s.mu.Lock()
	room := s.currentRoom
	if room == "" {
		s.errors.SetEmptyMessage(true)
		s.mu.Unlock()
		return ErrNoRoomSelected
	}
	if strings.TrimSpace(text) == "" {
		s.errors.SetEmptyMessage(true)
		s.mu.Unlock()
		return ErrEmptyMessage
	}
	s.mu.Unlock()

	return s.emitter.Emit(proto.IntentMessage, proto.MessageIntent{
		Message: text,
		RoomID:  room,
	})
}

// SetWriting reports the local writing flag for the current room.
func (s *Synchronizer) SetWriting(isWriting bool) error {
	s.mu.Lock()
	room := s.currentRoom
	s.mu.Unlock()

	if room == "" {
		return ErrNoRoomSelected
	}
	return s.emitter.Emit(proto.IntentIsWriting, proto.IsWritingIntent{
		IsWriting: isWriting,
		RoomID:    room,
	})
}

// State returns the connection lifecycle state.
func (s *Synchronizer) State() ConnectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentRoom returns the current room id, or "" when none is joined.
func (s *Synchronizer) CurrentRoom() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRoom
}

// Snapshot returns a consistent copy of the whole client view, including
// the derived writing indicator for the current room.
func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.presence.Participants()
	writers := WritingUsers(users, s.currentRoom, s.self.ConnID)

	return Snapshot{
		State:        s.state,
		Self:         s.self,
		CurrentRoom:  s.currentRoom,
		Rooms:        s.rooms.Rooms(),
		Users:        users,
		Messages:     s.timeline.NewestFirst(),
		Errors:       s.errors.Flags(),
		WritingLabel: WritingLabel(writers),
	}
}
