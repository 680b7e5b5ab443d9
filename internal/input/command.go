package input

import "fmt"

// CommandKind identifies an editor command.
type CommandKind uint8

const (
	// CmdQuit ends the editing session.
	CmdQuit CommandKind = iota + 1
	// CmdMove moves the cursor by (DX, DY).
	CmdMove
	// CmdSave writes the buffer to its file.
	CmdSave
	// CmdToggleMode switches between Normal and Insert mode.
	CmdToggleMode
	// CmdInsert inserts Char at the cursor.
	CmdInsert
	// CmdInsertNewLine splits the line at the cursor.
	CmdInsertNewLine
	// CmdDelete removes the character before the cursor.
	CmdDelete
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdQuit:
		return "quit"
	case CmdMove:
		return "move"
	case CmdSave:
		return "save"
	case CmdToggleMode:
		return "toggle-mode"
	case CmdInsert:
		return "insert"
	case CmdInsertNewLine:
		return "insert-newline"
	case CmdDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Command is a mode-resolved editor action derived from one key event.
// Only the payload fields relevant to Kind are set.
type Command struct {
	Kind CommandKind

	// DX and DY are the cursor deltas for CmdMove.
	DX, DY int

	// Char is the character for CmdInsert.
	Char rune
}

// Quit returns a quit command.
func Quit() Command { return Command{Kind: CmdQuit} }

// Move returns a cursor movement command.
func Move(dx, dy int) Command { return Command{Kind: CmdMove, DX: dx, DY: dy} }

// Save returns a save command.
func Save() Command { return Command{Kind: CmdSave} }

// ToggleMode returns a mode toggle command.
func ToggleMode() Command { return Command{Kind: CmdToggleMode} }

// Insert returns a character insertion command.
func Insert(r rune) Command { return Command{Kind: CmdInsert, Char: r} }

// InsertNewLine returns a line split command.
func InsertNewLine() Command { return Command{Kind: CmdInsertNewLine} }

// Delete returns a backspace command.
func Delete() Command { return Command{Kind: CmdDelete} }

// String returns a human-readable representation of the command.
func (c Command) String() string {
	switch c.Kind {
	case CmdMove:
		return fmt.Sprintf("move(%d,%d)", c.DX, c.DY)
	case CmdInsert:
		return fmt.Sprintf("insert(%q)", c.Char)
	default:
		return c.Kind.String()
	}
}
