package proto

// Room is a joinable room as broadcast by the server.
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Participant is one entry of the presence set. The server always
// broadcasts the full set, never deltas.
type Participant struct {
	ID          string `json:"id"`
	Username    string `json:"username,omitempty"`
	CurrentRoom string `json:"currentRoom,omitempty"`
	IsWriting   bool   `json:"isWriting,omitempty"`
}

// Message is a chat message. CreatedAt is server time in milliseconds;
// arrival order, not CreatedAt, is the ordering key.
type Message struct {
	ID             string `json:"id"`
	AuthorID       string `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	RoomID         string `json:"room_id"`
	Text           string `json:"message"`
	CreatedAt      int64  `json:"created_at"`
}

// ConnectData carries the connection id assigned by the server.
type ConnectData struct {
	ID string `json:"id"`
}

// InitialData seeds the room directory and presence set after connect.
type InitialData struct {
	Rooms []Room        `json:"rooms"`
	Users []Participant `json:"users"`
}

// ErrorStatus reports validation outcomes. Fields are pointers because a
// broadcast may mention only one of them; absent means "unchanged".
type ErrorStatus struct {
	CreateRoom *bool `json:"create_room,omitempty"`
	Message    *bool `json:"message,omitempty"`
}

// MessageIntent asks the server to deliver a message to a room.
type MessageIntent struct {
	Message string `json:"message"`
	RoomID  string `json:"room_id"`
}

// IsWritingIntent reports the local writing flag for a room.
type IsWritingIntent struct {
	IsWriting bool   `json:"isWriting"`
	RoomID    string `json:"room_id"`
}
