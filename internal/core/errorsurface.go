package core

// ErrorFlags are the transient validation flags consumed by presentation.
type ErrorFlags struct {
	RoomCreationConflict bool
	EmptyMessage         bool
}

// ErrorUpdate is a partial update of the flags. A nil field means the
// broadcast did not mention that flag and the current value is kept.
type ErrorUpdate struct {
	RoomCreationConflict *bool
	EmptyMessage         *bool
}

// ErrorSurface holds the latest unresolved validation errors.
type ErrorSurface struct {
	flags ErrorFlags
}

// NewErrorSurface constructs a surface with no pending errors.
func NewErrorSurface() *ErrorSurface {
	return &ErrorSurface{}
}

// Apply merges a partial update into the flags. A single broadcast may
// report only one error kind, so absent fields must not clobber the other.
func (e *ErrorSurface) Apply(u ErrorUpdate) {
	if u.RoomCreationConflict != nil {
		e.flags.RoomCreationConflict = *u.RoomCreationConflict
	}
	if u.EmptyMessage != nil {
		e.flags.EmptyMessage = *u.EmptyMessage
	}
}

// SetEmptyMessage raises or clears the empty-message flag locally.
func (e *ErrorSurface) SetEmptyMessage(v bool) {
	e.flags.EmptyMessage = v
}

// Flags returns the current flag values.
func (e *ErrorSurface) Flags() ErrorFlags {
	return e.flags
}
