package core

// Room is a joinable room as the server last broadcast it.
type Room struct {
	ID   string
	Name string
}

// Directory is the set of joinable rooms. The server enforces name
// uniqueness; the directory only mirrors broadcasts.
type Directory struct {
	rooms []Room
}

// NewDirectory constructs an empty room directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// ReplaceAll swaps the whole room set for the broadcast one.
func (d *Directory) ReplaceAll(rooms []Room) {
	d.rooms = make([]Room, len(rooms))
	copy(d.rooms, rooms)
}

// UpsertFromCreation inserts a room confirmed by a creation broadcast, or
// refreshes its name if the id is already present.
func (d *Directory) UpsertFromCreation(room Room) {
	for i := range d.rooms {
		if d.rooms[i].ID == room.ID {
			d.rooms[i].Name = room.Name
			return
		}
	}
	d.rooms = append(d.rooms, room)
}

// RemoveByID drops the room with the given id. Returns true if removed.
func (d *Directory) RemoveByID(id string) bool {
	for i := range d.rooms {
		if d.rooms[i].ID == id {
			d.rooms = append(d.rooms[:i], d.rooms[i+1:]...)
			return true
		}
	}
	return false
}

// ByID returns the room with the given id, if present.
func (d *Directory) ByID(id string) (Room, bool) {
	for _, r := range d.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// Contains reports whether a room with the given id exists.
func (d *Directory) Contains(id string) bool {
	_, ok := d.ByID(id)
	return ok
}

// Rooms returns a copy of the room set in broadcast order.
func (d *Directory) Rooms() []Room {
	out := make([]Room, len(d.rooms))
	copy(out, d.rooms)
	return out
}

// Len returns the number of rooms.
func (d *Directory) Len() int {
	return len(d.rooms)
}
