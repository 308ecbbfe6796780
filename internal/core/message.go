package core

import "time"

// Message is the domain model for a chat message. Immutable once stored.
type Message struct {
	ID             string
	AuthorID       string
	AuthorUsername string
	RoomID         string
	Text           string
	CreatedAt      time.Time
}
