// Package viewport provides the scrolling window over a text buffer.
//
// A Viewport exclusively owns one buffer. It tracks the top-left offset of
// the visible window, its dimensions, and a cursor. Cursor motion and edits
// are translated into buffer coordinates here, and the visible slice is
// exposed to the renderer as raw bytes or lossily decoded text.
package viewport

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/jot/internal/engine/buffer"
)

// Cursor is a position in buffer coordinates.
// X is the byte column, Y is the line. Both are always >= 0, but neither is
// bounded by the buffer's content.
type Cursor struct {
	X int
	Y int
}

// point converts the cursor to a buffer point.
func (c Cursor) point() buffer.Point {
	return buffer.Point{Line: c.Y, Column: c.X}
}

// Viewport represents the visible portion of a buffer.
type Viewport struct {
	buf *buffer.Buffer

	// Top-left visible offset in buffer coordinates
	startLine int
	startCol  int

	// Visible dimensions (rows, byte columns)
	height int
	width  int

	cursor Cursor
}

// New creates a viewport over buf with the window at the origin and the
// cursor at (0,0). The viewport takes ownership of buf.
// Negative dimensions are clamped to 0.
func New(buf *buffer.Buffer, height, width int) *Viewport {
	if buf == nil {
		buf = buffer.New()
	}
	return &Viewport{
		buf:    buf,
		height: max(height, 0),
		width:  max(width, 0),
	}
}

// Height returns the number of visible rows.
func (v *Viewport) Height() int {
	return v.height
}

// Width returns the number of visible byte columns.
func (v *Viewport) Width() int {
	return v.width
}

// StartLine returns the first visible buffer line.
func (v *Viewport) StartLine() int {
	return v.startLine
}

// StartCol returns the first visible byte column.
func (v *Viewport) StartCol() int {
	return v.startCol
}

// Cursor returns the cursor position in buffer coordinates.
func (v *Viewport) Cursor() Cursor {
	return v.cursor
}

// LineCount returns the number of lines in the underlying buffer.
func (v *Viewport) LineCount() int {
	return v.buf.LineCount()
}

// Bytes returns the serialized content of the underlying buffer.
func (v *Viewport) Bytes() []byte {
	return v.buf.Bytes()
}

// Revision returns the revision of the underlying buffer.
func (v *Viewport) Revision() buffer.Revision {
	return v.buf.Revision()
}

// Line returns a buffer line by absolute index.
func (v *Viewport) Line(index int) ([]byte, bool) {
	return v.buf.Line(index)
}

// Resize updates the visible dimensions.
// The offset is preserved unless the cursor would fall outside the new
// window, in which case the window scrolls just enough to reveal it.
func (v *Viewport) Resize(height, width int) {
	v.height = max(height, 0)
	v.width = max(width, 0)
	v.follow()
}

// VisibleLine returns the bytes shown on the given screen row.
// The slice covers columns [startCol, startCol+width) of the buffer line,
// clamped to the line's length. Rows outside the window or past the end of
// the buffer yield an empty slice.
func (v *Viewport) VisibleLine(row int) []byte {
	if row < 0 || row >= v.height {
		return []byte{}
	}
	line, ok := v.buf.Line(v.startLine + row)
	if !ok {
		return []byte{}
	}
	start := min(v.startCol, len(line))
	end := min(v.startCol+v.width, len(line))
	return line[start:end]
}

// VisibleText returns the visible bytes of a row as displayable text.
// Invalid UTF-8 is replaced rather than reported.
func (v *Viewport) VisibleText(row int) string {
	return Text(v.VisibleLine(row))
}

// VisibleRows returns how many screen rows show buffer content.
func (v *Viewport) VisibleRows() int {
	remaining := max(v.buf.LineCount()-v.startLine, 0)
	return min(v.height, remaining)
}

// Lines returns the text of every row that shows buffer content.
func (v *Viewport) Lines() []string {
	rows := v.VisibleRows()
	lines := make([]string, rows)
	for i := range rows {
		lines[i] = v.VisibleText(i)
	}
	return lines
}

// Render joins the visible rows with newlines.
func (v *Viewport) Render() string {
	return strings.Join(v.Lines(), "\n")
}

// String implements fmt.Stringer.
func (v *Viewport) String() string {
	return v.Render()
}

// Navigate moves the cursor by the given deltas.
// Each coordinate is clamped at 0 but is not bounded by the buffer's
// content; edits clamp the cursor before using it.
func (v *Viewport) Navigate(dx, dy int) {
	v.cursor.X = max(v.cursor.X+dx, 0)
	v.cursor.Y = max(v.cursor.Y+dy, 0)
	v.follow()
}

// Insert inserts r at the cursor and moves the cursor past it.
func (v *Viewport) Insert(r rune) error {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)

	end, err := v.buf.Insert(v.buf.Clamp(v.cursor.point()), enc[:n])
	if err != nil {
		return err
	}
	v.moveTo(end)
	return nil
}

// InsertNewLine splits the current line at the cursor and moves the cursor
// to the start of the new line.
func (v *Viewport) InsertNewLine() error {
	next, err := v.buf.SplitLine(v.buf.Clamp(v.cursor.point()))
	if err != nil {
		return err
	}
	v.moveTo(next)
	return nil
}

// Delete removes the character before the cursor. At the start of a line
// after the first, the line is joined onto the previous one and the cursor
// lands on the former end of that line.
func (v *Viewport) Delete() error {
	pos, err := v.buf.DeleteBefore(v.buf.Clamp(v.cursor.point()))
	if err != nil {
		return err
	}
	v.moveTo(pos)
	return nil
}

// moveTo places the cursor at p and scrolls to keep it visible.
func (v *Viewport) moveTo(p buffer.Point) {
	v.cursor = Cursor{X: p.Column, Y: p.Line}
	v.follow()
}

// follow applies Scroll to the current state.
func (v *Viewport) follow() {
	v.startLine, v.startCol = Scroll(v.cursor, v.height, v.width, v.startLine, v.startCol)
}
