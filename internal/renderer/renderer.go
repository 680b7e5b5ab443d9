package renderer

import (
	"unicode/utf8"

	"github.com/dshills/jot/internal/input/mode"
	"github.com/dshills/jot/internal/renderer/backend"
	"github.com/dshills/jot/internal/renderer/statusline"
	"github.com/dshills/jot/internal/renderer/viewport"
)

// Frame is the editor state to display.
type Frame struct {
	Mode     mode.Mode
	Path     string
	Modified bool

	// Lines are the visible rows, already sliced to the window.
	Lines [][]byte

	// CursorX and CursorY are the cursor in window cells.
	CursorX, CursorY int

	// Line and Col are the cursor in buffer coordinates, 1-indexed.
	Line, Col  int
	TotalLines int

	Message      string
	MessageError bool
}

// Options configures the renderer.
type Options struct {
	StatusLine bool
	Palette    statusline.Palette
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		StatusLine: true,
		Palette:    statusline.DefaultPalette(),
	}
}

// Renderer draws frames onto a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options
	status  *statusline.StatusLine
}

// New creates a renderer for b.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		backend: b,
		opts:    opts,
		status:  statusline.New(opts.Palette),
	}
}

// TextArea returns the rows and columns available for buffer text.
func (r *Renderer) TextArea() (height, width int) {
	width, height = r.backend.Size()
	if r.opts.StatusLine && height > 0 {
		height--
	}
	return height, width
}

// Render paints f and flushes it to the display.
func (r *Renderer) Render(f Frame) {
	height, width := r.TextArea()

	r.backend.Clear()
	for row := 0; row < height && row < len(f.Lines); row++ {
		r.drawLine(row, width, f.Lines[row])
	}

	if r.opts.StatusLine {
		r.status.SetMode(f.Mode)
		r.status.SetFilename(f.Path)
		r.status.SetModified(f.Modified)
		r.status.SetPosition(f.Line, f.Col)
		r.status.SetTotalLines(f.TotalLines)
		msgType := statusline.MessageInfo
		if f.MessageError {
			msgType = statusline.MessageError
		}
		r.status.SetMessage(f.Message, msgType)
		r.status.Render(r.backend, height, width)
	}

	r.backend.SetCursorStyle(cursorStyle(f.Mode))
	if f.CursorX >= 0 && f.CursorX < width && f.CursorY >= 0 && f.CursorY < height {
		r.backend.ShowCursor(f.CursorX, f.CursorY)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
}

// drawLine draws one text row, stopping at the first glyph that does
// not fit entirely.
func (r *Renderer) drawLine(row, width int, line []byte) {
	col := 0
	for _, g := range viewport.Glyphs(viewport.Text(line)) {
		if col+g.Width > width {
			return
		}
		base, size := utf8.DecodeRuneInString(g.Text)
		cell := backend.Cell{Rune: base, Width: g.Width}
		if rest := g.Text[size:]; rest != "" {
			cell.Combining = []rune(rest)
		}
		r.backend.SetCell(col, row, cell)
		col += g.Width
	}
}

func cursorStyle(m mode.Mode) backend.CursorStyle {
	if m.CursorStyle() == mode.CursorBar {
		return backend.CursorBar
	}
	return backend.CursorBlock
}
