package input

import (
	"github.com/dshills/jot/internal/input/key"
	"github.com/dshills/jot/internal/input/mode"
)

// normalRunes maps unmodified Normal mode characters to commands.
var normalRunes = map[rune]Command{
	'q': Quit(),
	'h': Move(-1, 0),
	'l': Move(1, 0),
	'j': Move(0, 1),
	'k': Move(0, -1),
	'i': ToggleMode(),
	's': Save(),
	'w': Save(),
}

// Parse maps a key event to a command for the given mode.
// The second result is false when the event has no mapping; callers drop
// such events without acting on them.
func Parse(ev key.Event, m mode.Mode) (Command, bool) {
	if cmd, ok := parseCommon(ev); ok {
		return cmd, true
	}

	switch m {
	case mode.Normal:
		return parseNormal(ev)
	case mode.Insert:
		return parseInsert(ev)
	default:
		return Command{}, false
	}
}

// parseCommon handles keys that mean the same thing in every mode.
func parseCommon(ev key.Event) (Command, bool) {
	// Ctrl+S is the write key.
	if ev.IsCtrlRune('s') {
		return Save(), true
	}
	if ev.Modifiers != key.ModNone {
		return Command{}, false
	}
	switch ev.Key {
	case key.KeyLeft:
		return Move(-1, 0), true
	case key.KeyRight:
		return Move(1, 0), true
	case key.KeyDown:
		return Move(0, 1), true
	case key.KeyUp:
		return Move(0, -1), true
	}
	return Command{}, false
}

func parseNormal(ev key.Event) (Command, bool) {
	if !ev.IsRune() || ev.IsModified() {
		return Command{}, false
	}
	cmd, ok := normalRunes[ev.Rune]
	return cmd, ok
}

func parseInsert(ev key.Event) (Command, bool) {
	switch {
	case ev.Is(key.KeyEscape):
		return ToggleMode(), true
	case ev.Is(key.KeyEnter):
		return InsertNewLine(), true
	case ev.Is(key.KeyBackspace):
		return Delete(), true
	case ev.Is(key.KeySpace):
		return Insert(' '), true
	case ev.Is(key.KeyTab):
		return Insert('\t'), true
	case ev.IsChar() && !ev.IsModified():
		return Insert(ev.Rune), true
	}
	return Command{}, false
}
