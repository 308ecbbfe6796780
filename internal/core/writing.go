package core

import (
	"strings"

	"github.com/samber/lo"
)

// WritingUsers derives who should show in the writing indicator: writing
// participants whose current room matches, excluding self. Both flags are
// checked; a stale IsWriting from another room must not leak through.
func WritingUsers(users []Participant, currentRoom, selfID string) []Participant {
	if currentRoom == "" {
		return nil
	}
	return lo.Filter(users, func(u Participant, _ int) bool {
		return u.IsWriting && u.CurrentRoom == currentRoom && u.ID != selfID
	})
}

// WritingLabel formats the indicator text. Zero writers yields the empty
// string; otherwise all names but the last are joined by ", " and the last
// by " and ". The trailing "is writing..." is the same for any count.
func WritingLabel(writers []Participant) string {
	names := lo.Map(writers, func(u Participant, _ int) string { return u.Username })

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0] + " is writing..."
	default:
		head := strings.Join(names[:len(names)-1], ", ")
		return head + " and " + names[len(names)-1] + " is writing..."
	}
}
