package core

import (
	"time"

	"github.com/vovakirdan/pushchat-client/internal/proto"
)

func roomsFromProto(in []proto.Room) []Room {
	out := make([]Room, len(in))
	for i, r := range in {
		out[i] = Room{ID: r.ID, Name: r.Name}
	}
	return out
}

func participantsFromProto(in []proto.Participant) []Participant {
	out := make([]Participant, len(in))
	for i, u := range in {
		out[i] = Participant{
			ID:          u.ID,
			Username:    u.Username,
			CurrentRoom: u.CurrentRoom,
			IsWriting:   u.IsWriting,
		}
	}
	return out
}

func messageFromProto(in proto.Message) Message {
	return Message{
		ID:             in.ID,
		AuthorID:       in.AuthorID,
		AuthorUsername: in.AuthorUsername,
		RoomID:         in.RoomID,
		Text:           in.Text,
		CreatedAt:      time.UnixMilli(in.CreatedAt),
	}
}

func messagesFromProto(in []proto.Message) []Message {
	out := make([]Message, len(in))
	for i, m := range in {
		out[i] = messageFromProto(m)
	}
	return out
}
