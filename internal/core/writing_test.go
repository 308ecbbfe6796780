package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func writer(id, name, room string) Participant {
	return Participant{ID: id, Username: name, CurrentRoom: room, IsWriting: true}
}

func TestWritingLabelBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		writers []Participant
		want    string
	}{
		{"none", nil, ""},
		{"one", []Participant{writer("1", "A", "r")}, "A is writing..."},
		{"two", []Participant{writer("1", "A", "r"), writer("2", "B", "r")}, "A and B is writing..."},
		{"three", []Participant{writer("1", "A", "r"), writer("2", "B", "r"), writer("3", "C", "r")}, "A, B and C is writing..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WritingLabel(tt.writers))
		})
	}
}

func TestWritingUsersExcludesSelf(t *testing.T) {
	users := []Participant{
		writer("self", "me", "r1"),
		writer("u2", "bob", "r1"),
	}
	got := WritingUsers(users, "r1", "self")
	assert.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].Username)
}

func TestWritingUsersFiltersByBothFlags(t *testing.T) {
	users := []Participant{
		// Writing, but in another room.
		writer("u1", "ann", "r2"),
		// In the room, but not writing.
		{ID: "u2", Username: "bob", CurrentRoom: "r1"},
		// Both conditions hold.
		writer("u3", "carol", "r1"),
	}
	got := WritingUsers(users, "r1", "self")
	assert.Len(t, got, 1)
	assert.Equal(t, "carol", got[0].Username)
}

func TestWritingUsersNoCurrentRoom(t *testing.T) {
	users := []Participant{writer("u1", "ann", "r1")}
	assert.Empty(t, WritingUsers(users, "", "self"))
}

func TestWritingUsersPreserveBroadcastOrder(t *testing.T) {
	users := []Participant{
		writer("u1", "ann", "r1"),
		writer("u2", "bob", "r1"),
		writer("u3", "carol", "r1"),
	}
	got := WritingUsers(users, "r1", "self")
	assert.Equal(t, "ann, bob and carol is writing...", WritingLabel(got))
}
