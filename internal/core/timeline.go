package core

// Timeline is the ordered message history of the connection. Messages are
// stored chronologically (oldest first); arrival order is the ordering key,
// not CreatedAt. Messages are never mutated or removed once stored, only
// the whole timeline is cleared on disconnect.
type Timeline struct {
	msgs []Message
}

// NewTimeline constructs an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// LoadHistory replaces the timeline with a history batch. The server
// delivers batches newest-first, so the batch is reversed once to obtain
// chronological order.
func (t *Timeline) LoadHistory(batch []Message) {
	t.msgs = make([]Message, len(batch))
	for i, m := range batch {
		t.msgs[len(batch)-1-i] = m
	}
}

// AppendLive adds a freshly broadcast message as the newest entry.
func (t *Timeline) AppendLive(m Message) {
	t.msgs = append(t.msgs, m)
}

// Chronological returns a copy of the timeline oldest-first.
func (t *Timeline) Chronological() []Message {
	out := make([]Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// NewestFirst returns a copy of the timeline in render order, newest at
// the head.
func (t *Timeline) NewestFirst() []Message {
	out := make([]Message, len(t.msgs))
	for i, m := range t.msgs {
		out[len(t.msgs)-1-i] = m
	}
	return out
}

// Clear drops all messages, used on disconnect.
func (t *Timeline) Clear() {
	t.msgs = nil
}

// Len returns the number of stored messages.
func (t *Timeline) Len() int {
	return len(t.msgs)
}
