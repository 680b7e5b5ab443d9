package mode

// Mode is the interpretation context for key events.
type Mode uint8

const (
	// Normal is navigation and command mode.
	Normal Mode = iota

	// Insert is text input mode.
	Insert
)

// Standard mode names.
const (
	NameNormal = "normal"
	NameInsert = "insert"
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Insert {
		return Normal
	}
	return Insert
}

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case Normal:
		return NameNormal
	case Insert:
		return NameInsert
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	default:
		return "?"
	}
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}
