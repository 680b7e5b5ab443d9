package key

import "unicode"

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Is returns true if the event is the given special key with no modifiers.
func (e Event) Is(k Key) bool {
	return e.Key == k && e.Modifiers == ModNone
}

// IsCtrlRune returns true if the event is Ctrl plus the given letter.
// Terminals may report Ctrl+letter either upper or lower case.
func (e Event) IsCtrlRune(r rune) bool {
	return e.Key == KeyRune && e.Modifiers.HasCtrl() && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// String returns a canonical string representation.
// Examples: "a", "Ctrl+s", "Enter", "Space".
func (e Event) String() string {
	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.IsRune() {
		mods &^= ModShift
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
