package core

// Identity holds who the local participant is. ConnID is rebound on every
// successful connect; Username is chosen locally and survives reconnects.
type Identity struct {
	ConnID   string
	Username string
}

// Rebind replaces the connection id after a fresh connect.
func (i *Identity) Rebind(connID string) {
	i.ConnID = connID
}

// SetUsername records the locally chosen display name.
func (i *Identity) SetUsername(name string) {
	i.Username = name
}
