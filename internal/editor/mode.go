// Package editor implements the modal editing session: cursor, viewport, and
// the NORMAL / INSERT / COMMAND state machine that routes keys to document edits.
package editor

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNormal is the initial mode for navigation.
	ModeNormal Mode = iota
	// ModeInsert inserts typed bytes at the cursor.
	ModeInsert
	// ModeCommand accumulates a command line after ':'.
	ModeCommand
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// CursorShape tells the renderer how to draw the cursor cell.
type CursorShape int

const (
	// ShapeBlock covers the whole cell (NORMAL and COMMAND).
	ShapeBlock CursorShape = iota
	// ShapeBar marks the insertion point (INSERT).
	ShapeBar
)
