// Package statusline provides the status line UI component.
package statusline

import (
	"strconv"

	"github.com/dshills/jot/internal/input/mode"
	"github.com/dshills/jot/internal/renderer/backend"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// Palette holds the status line styles.
type Palette struct {
	Bar    backend.Style
	Normal backend.Style // mode badge in normal mode
	Insert backend.Style // mode badge in insert mode
	Info   backend.Style
	Error  backend.Style
}

// DefaultPalette returns the default styles.
func DefaultPalette() Palette {
	return Palette{
		Bar:    backend.Style{Reverse: true},
		Normal: backend.Style{Bold: true},
		Insert: backend.Style{Bold: true},
		Info:   backend.Style{Reverse: true},
		Error:  backend.Style{Bold: true, Reverse: true},
	}
}

// posReserve is the space kept free for position info on the right.
const posReserve = 20

// StatusLine renders the bottom status line.
type StatusLine struct {
	mode       mode.Mode
	filename   string // empty for an unnamed buffer
	modified   bool
	line       int // 1-indexed for display
	col        int // 1-indexed for display
	totalLines int

	message     string
	messageType MessageType

	palette Palette
}

// New creates a new status line.
func New(p Palette) *StatusLine {
	return &StatusLine{palette: p}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(m mode.Mode) {
	s.mode = m
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage displays a status message in place of the file info.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
	if msg == "" {
		s.messageType = MessageNone
	}
}

// Text returns the status content without styling, as Render lays it out
// for the given width. It is intended for tests and logging.
func (s *StatusLine) Text(width int) string {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	s.layout(width, func(x int, r rune, _ backend.Style) { row[x] = r })

	end := len(row)
	for end > 0 && row[end-1] == ' ' {
		end--
	}
	return string(row[:end])
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row, width int) {
	for x := 0; x < width; x++ {
		b.SetCell(x, row, backend.NewCell(' ', s.palette.Bar))
	}
	s.layout(width, func(x int, r rune, style backend.Style) {
		b.SetCell(x, row, backend.NewCell(r, style))
	})
}

// layout places every status rune through put.
func (s *StatusLine) layout(width int, put func(x int, r rune, style backend.Style)) {
	col := 0
	write := func(text string, style backend.Style, limit int) {
		for _, r := range text {
			if col >= limit {
				return
			}
			put(col, r, style)
			col++
		}
	}

	badge := s.palette.Normal
	if s.mode == mode.Insert {
		badge = s.palette.Insert
	}
	write(" "+s.mode.DisplayName()+" ", badge, width)
	write(" ", s.palette.Bar, width)

	if s.message != "" {
		style := s.palette.Info
		if s.messageType == MessageError {
			style = s.palette.Error
		}
		write(s.message, style, width-posReserve)
	} else {
		write(s.fileLabel(), s.palette.Bar, width-posReserve)
	}

	// Right side: position info
	posInfo := s.formatPosition()
	posStart := width - len(posInfo) - 1
	if posStart > col {
		col = posStart
		write(posInfo, s.palette.Bar, width)
	}
}

// fileLabel returns the filename with its modified marker.
func (s *StatusLine) fileLabel() string {
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	if s.modified {
		name += " [+]"
	}
	return name
}

// formatPosition formats the position info for the right side.
// Format: "Ln 123, Col 45 | 50%"
func (s *StatusLine) formatPosition() string {
	line := max(s.line, 1)
	col := max(s.col, 1)

	result := "Ln " + strconv.Itoa(line) + ", Col " + strconv.Itoa(col)

	switch {
	case s.totalLines <= 1:
		return result + " | All"
	case line == 1:
		return result + " | Top"
	case line >= s.totalLines:
		return result + " | Bot"
	default:
		return result + " | " + strconv.Itoa(line*100/s.totalLines) + "%"
	}
}
