package backend

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)

	red := RGB(colorful.Color{R: 1})
	cell := NewCell('X', DefaultStyle.WithForeground(red))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.SetCell(10, 10, NewCell('X', DefaultStyle))
	b.SetCell(20, 20, NewCell('Y', DefaultStyle))

	b.Clear()

	got := b.GetCell(10, 10)
	if !got.Equals(EmptyCell()) {
		t.Error("clear should reset all cells")
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(10, 2)
	for i, r := range "hi" {
		b.SetCell(i, 0, NewCell(r, DefaultStyle))
	}
	b.SetCell(2, 0, Cell{Rune: '世', Width: 2})
	b.SetCell(4, 0, Cell{Rune: 'e', Combining: []rune{'\u0301'}, Width: 1})

	if got := b.Row(0); got != "hi世e\u0301" {
		t.Errorf("expected %q, got %q", "hi世e\u0301", got)
	}
	if got := b.Row(1); got != "" {
		t.Errorf("expected blank row, got %q", got)
	}
	if got := b.Row(5); got != "" {
		t.Errorf("out of range row should be empty, got %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.ShowCursor(3, 4)
	b.SetCursorStyle(CursorBar)

	x, y, visible := b.CursorPosition()
	if x != 3 || y != 4 || !visible {
		t.Errorf("expected visible cursor at (3,4), got (%d,%d) visible=%v", x, y, visible)
	}
	if b.CursorStyleValue() != CursorBar {
		t.Errorf("expected CursorBar, got %v", b.CursorStyleValue())
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.PostString("ab")
	b.PostKey(KeyEnter, 0, ModNone)
	b.Resize(40, 10)

	for _, want := range []Event{
		{Type: EventKey, Key: KeyRune, Rune: 'a'},
		{Type: EventKey, Key: KeyRune, Rune: 'b'},
		{Type: EventKey, Key: KeyEnter},
		{Type: EventResize, Width: 40, Height: 10},
	} {
		if got := b.PollEvent(); got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	}

	if w, h := b.Size(); w != 40 || h != 10 {
		t.Errorf("expected size (40, 10), got (%d, %d)", w, h)
	}
}

func TestNullBackendShowCount(t *testing.T) {
	b := NewNullBackend(1, 1)
	b.Show()
	b.Show()
	if b.ShowCount() != 2 {
		t.Errorf("expected 2, got %d", b.ShowCount())
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModAlt
	if !m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Error("expected Ctrl and Alt")
	}
	if m.Has(ModShift) {
		t.Error("unexpected Shift")
	}
}

func TestColor(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if ColorDefault.Hex() != "default" {
		t.Errorf("expected 'default', got %q", ColorDefault.Hex())
	}

	c := RGB(colorful.Color{R: 1, G: 0.5019607843137255, B: 0})
	if c.IsDefault() {
		t.Error("RGB color should not be default")
	}
	if c.Hex() != "#ff8000" {
		t.Errorf("expected '#ff8000', got %q", c.Hex())
	}
	r, g, b := c.RGB255()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("expected (255,128,0), got (%d,%d,%d)", r, g, b)
	}
}
