package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return out
}

func TestLoadHistoryReversesBatchOnce(t *testing.T) {
	tl := NewTimeline()
	tl.LoadHistory([]Message{{ID: "3"}, {ID: "2"}, {ID: "1"}})

	require.Equal(t, []string{"1", "2", "3"}, ids(tl.Chronological()))
	require.Equal(t, []string{"3", "2", "1"}, ids(tl.NewestFirst()))
}

func TestLoadHistoryEmptyBatch(t *testing.T) {
	tl := NewTimeline()
	tl.LoadHistory(nil)
	require.Zero(t, tl.Len())
	require.Empty(t, tl.Chronological())
}

func TestLoadHistoryReplacesPreviousContent(t *testing.T) {
	tl := NewTimeline()
	tl.AppendLive(Message{ID: "old"})
	tl.LoadHistory([]Message{{ID: "b"}, {ID: "a"}})
	require.Equal(t, []string{"a", "b"}, ids(tl.Chronological()))
}

func TestAppendLivePreservesArrivalOrder(t *testing.T) {
	tl := NewTimeline()
	tl.AppendLive(Message{ID: "m1"})
	tl.AppendLive(Message{ID: "m2"})

	require.Equal(t, []string{"m2", "m1"}, ids(tl.NewestFirst()))
	require.Equal(t, []string{"m1", "m2"}, ids(tl.Chronological()))
}

func TestAppendLiveAfterHistory(t *testing.T) {
	tl := NewTimeline()
	tl.LoadHistory([]Message{{ID: "2"}, {ID: "1"}})
	tl.AppendLive(Message{ID: "3"})

	require.Equal(t, []string{"3", "2", "1"}, ids(tl.NewestFirst()))
}

func TestClearDropsEverything(t *testing.T) {
	tl := NewTimeline()
	tl.AppendLive(Message{ID: "m1"})
	tl.Clear()
	require.Zero(t, tl.Len())
}

func TestAccessorsReturnCopies(t *testing.T) {
	tl := NewTimeline()
	tl.AppendLive(Message{ID: "m1"})

	got := tl.NewestFirst()
	got[0].ID = "mutated"
	require.Equal(t, "m1", tl.NewestFirst()[0].ID)
}
