package backend

import "strings"

// NullBackend is an in-memory backend for testing.
// Cells, cursor state and flush counts are retained for inspection and
// events are delivered from a buffered queue fed by PostEvent.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shows         int
	events        chan Event
}

// Ensure NullBackend implements Backend.
var _ Backend = (*NullBackend)(nil)

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		events: make(chan Event, 100),
	}
	b.setSize(width, height)
	return b
}

func (b *NullBackend) setSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

// SetCell stores cell at (x, y). Like a real terminal, a wide cell also
// claims the following columns as zero-width continuation cells.
func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = cell
	for i := 1; i < cell.Width && x+i < b.width; i++ {
		b.cells[y][x+i] = Cell{Style: cell.Style}
	}
}

func (b *NullBackend) GetCell(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	empty := EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	return b.cursorStyle
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	return b.shows
}

// Row returns the text of row y with trailing blanks removed.
// Continuation cells of wide characters (Width 0) are skipped.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if c.Width == 0 {
			continue
		}
		sb.WriteString(c.Text())
	}
	return strings.TrimRight(sb.String(), " ")
}

// Resize simulates a terminal resize: the screen is reallocated and a
// resize event is queued.
func (b *NullBackend) Resize(width, height int) {
	b.setSize(width, height)
	b.PostEvent(Event{Type: EventResize, Width: b.width, Height: b.height})
}

// PostKey queues a key event.
func (b *NullBackend) PostKey(key Key, r rune, mod ModMask) {
	b.PostEvent(Event{Type: EventKey, Key: key, Rune: r, Mod: mod})
}

// PostString queues one KeyRune event per rune of s.
func (b *NullBackend) PostString(s string) {
	for _, r := range s {
		b.PostKey(KeyRune, r, ModNone)
	}
}
