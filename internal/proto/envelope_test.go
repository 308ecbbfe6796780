package proto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeWithPayload(t *testing.T) {
	env, err := NewEnvelope(IntentMessage, MessageIntent{Message: "hi", RoomID: "r1"})
	require.NoError(t, err)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"message","data":{"message":"hi","room_id":"r1"}}`, string(raw))
}

func TestNewEnvelopeNilPayload(t *testing.T) {
	env, err := NewEnvelope(IntentJoinRoom, nil)
	require.NoError(t, err)
	assert.Nil(t, env.Data)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"join_room"}`, string(raw))
}

func TestEnvelopeDecodeErrorStatusPartial(t *testing.T) {
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"event":"error_status","data":{"message":true}}`), &env))
	require.Equal(t, EventErrorStatus, env.Event)

	var status ErrorStatus
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Nil(t, status.CreateRoom, "absent flag stays nil")
	require.NotNil(t, status.Message)
	assert.True(t, *status.Message)
}

func TestMessageWireShape(t *testing.T) {
	raw := []byte(`{
		"id": "m1",
		"author_id": "u1",
		"author_username": "ann",
		"room_id": "r1",
		"message": "hello",
		"created_at": 1700000000000
	}`)

	var m Message
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "u1", m.AuthorID)
	assert.Equal(t, "ann", m.AuthorUsername)
	assert.Equal(t, "hello", m.Text)
	assert.EqualValues(t, 1700000000000, m.CreatedAt)
}

func TestParticipantWireShape(t *testing.T) {
	raw := []byte(`{"id":"u1","username":"ann","currentRoom":"r1","isWriting":true}`)

	var u Participant
	require.NoError(t, json.Unmarshal(raw, &u))
	assert.Equal(t, "r1", u.CurrentRoom)
	assert.True(t, u.IsWriting)
}
