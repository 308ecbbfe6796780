package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceReplaceAllIsFullReplacement(t *testing.T) {
	p := NewPresence()
	p.ReplaceAll([]Participant{{ID: "u1"}, {ID: "u2"}})
	p.ReplaceAll([]Participant{{ID: "u3"}})

	require.Equal(t, 1, p.Len())
	_, ok := p.ByID("u1")
	assert.False(t, ok)
	_, ok = p.ByID("u3")
	assert.True(t, ok)
}

func TestSetWritingOnKnownParticipant(t *testing.T) {
	p := NewPresence()
	p.ReplaceAll([]Participant{{ID: "u1", Username: "ann"}})

	p.SetWriting("u1", true, "r1")

	u, ok := p.ByID("u1")
	require.True(t, ok)
	assert.True(t, u.IsWriting)
	assert.Equal(t, "r1", u.CurrentRoom)

	p.SetWriting("u1", false, "r1")
	u, _ = p.ByID("u1")
	assert.False(t, u.IsWriting)
}

func TestSetWritingIgnoresUnknownIDs(t *testing.T) {
	p := NewPresence()
	p.ReplaceAll([]Participant{{ID: "u1"}})

	p.SetWriting("ghost", true, "r1")

	require.Equal(t, 1, p.Len())
	_, ok := p.ByID("ghost")
	assert.False(t, ok)
}

func TestInRoomFiltersByCurrentRoom(t *testing.T) {
	p := NewPresence()
	p.ReplaceAll([]Participant{
		{ID: "u1", CurrentRoom: "r1"},
		{ID: "u2", CurrentRoom: "r2"},
		{ID: "u3", CurrentRoom: "r1"},
	})

	got := p.InRoom("r1")
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "u3", got[1].ID)
}

func TestParticipantsReturnsCopy(t *testing.T) {
	p := NewPresence()
	p.ReplaceAll([]Participant{{ID: "u1"}})

	got := p.Participants()
	got[0].ID = "mutated"

	u, ok := p.ByID("u1")
	require.True(t, ok)
	assert.Equal(t, "u1", u.ID)
}
