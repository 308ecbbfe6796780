package core

import "github.com/samber/lo"

// Participant is one member of the presence set as the server reports it.
// CurrentRoom and IsWriting are only ever set from broadcasts, never
// inferred locally for other participants.
type Participant struct {
	ID          string
	Username    string
	CurrentRoom string
	IsWriting   bool
}

// Presence mirrors the server's presence set. Broadcasts carry the whole
// set, so ReplaceAll is the primary mutation.
type Presence struct {
	users []Participant
}

// NewPresence constructs an empty presence tracker.
func NewPresence() *Presence {
	return &Presence{}
}

// ReplaceAll swaps the whole presence set for the broadcast one.
func (p *Presence) ReplaceAll(users []Participant) {
	p.users = make([]Participant, len(users))
	copy(p.users, users)
}

// SetWriting updates the writing flag of a known participant. Unknown ids
// are ignored: the broadcast set is authoritative and should already hold
// every connected participant.
func (p *Presence) SetWriting(id string, isWriting bool, roomID string) {
	for i := range p.users {
		if p.users[i].ID == id {
			p.users[i].IsWriting = isWriting
			if isWriting {
				p.users[i].CurrentRoom = roomID
			}
			return
		}
	}
}

// ByID returns the participant with the given id, if present.
func (p *Presence) ByID(id string) (Participant, bool) {
	u, ok := lo.Find(p.users, func(u Participant) bool { return u.ID == id })
	return u, ok
}

// InRoom returns the participants whose current room is roomID.
func (p *Presence) InRoom(roomID string) []Participant {
	return lo.Filter(p.users, func(u Participant, _ int) bool {
		return u.CurrentRoom == roomID
	})
}

// Participants returns a copy of the presence set in broadcast order.
func (p *Presence) Participants() []Participant {
	out := make([]Participant, len(p.users))
	copy(out, p.users)
	return out
}

// Clear drops every participant, used on disconnect.
func (p *Presence) Clear() {
	p.users = nil
}

// Len returns the number of tracked participants.
func (p *Presence) Len() int {
	return len(p.users)
}
