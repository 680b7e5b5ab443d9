package viewport

import (
	"testing"

	"github.com/dshills/jot/internal/engine/buffer"
)

func newView(content string, height, width int) *Viewport {
	return New(buffer.FromBytes([]byte(content)), height, width)
}

func TestNewViewport(t *testing.T) {
	v := New(buffer.New(), 10, 10)

	if v.StartLine() != 0 || v.StartCol() != 0 {
		t.Errorf("expected origin offset, got (%d, %d)", v.StartLine(), v.StartCol())
	}
	if v.Height() != 10 || v.Width() != 10 {
		t.Errorf("expected 10x10, got %dx%d", v.Height(), v.Width())
	}
	if v.Cursor() != (Cursor{}) {
		t.Errorf("expected cursor at origin, got %+v", v.Cursor())
	}
}

func TestNewViewportNegativeSize(t *testing.T) {
	v := New(nil, -3, -1)

	if v.Height() != 0 || v.Width() != 0 {
		t.Errorf("expected 0x0, got %dx%d", v.Height(), v.Width())
	}
	if v.Render() != "" {
		t.Errorf("expected empty render, got %q", v.Render())
	}
}

func TestViewportRender(t *testing.T) {
	v := newView("Hello, World !\n", 1, 10)

	if got := v.Render(); got != "Hello, Wor" {
		t.Errorf("expected 'Hello, Wor', got %q", got)
	}
	if got := v.String(); got != "Hello, Wor" {
		t.Errorf("String() should match Render(), got %q", got)
	}
}

func TestViewportRenderEmpty(t *testing.T) {
	v := New(buffer.New(), 10, 20)

	if got := v.Render(); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}

func TestViewportRenderMultiline(t *testing.T) {
	v := newView("one\ntwo\nthree\nfour\n", 3, 4)

	if got := v.Render(); got != "one\ntwo\nthre" {
		t.Errorf("expected 'one\\ntwo\\nthre', got %q", got)
	}

	short := newView("a\nb", 5, 5)
	if got := short.Render(); got != "a\nb" {
		t.Errorf("rows past buffer end should not render, got %q", got)
	}
}

func TestViewportResize(t *testing.T) {
	v := New(buffer.New(), 10, 10)
	v.Resize(20, 20)

	if v.Height() != 20 || v.Width() != 20 {
		t.Errorf("expected 20x20, got %dx%d", v.Height(), v.Width())
	}
	if v.StartLine() != 0 || v.StartCol() != 0 {
		t.Error("resize should not move the window when the cursor stays visible")
	}
}

func TestViewportResizeScrollsToCursor(t *testing.T) {
	v := newView("0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n", 10, 10)
	v.Navigate(3, 7)

	v.Resize(4, 2)
	if v.StartLine() != 4 {
		t.Errorf("expected start line 4, got %d", v.StartLine())
	}
	if v.StartCol() != 2 {
		t.Errorf("expected start col 2, got %d", v.StartCol())
	}
}

func TestVisibleLineClamping(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		width    int
		expected string
	}{
		{"shorter than width", "abc", 5, "abc"},
		{"equal to width", "abcde", 5, "abcde"},
		{"longer than width", "abcdefgh", 5, "abcde"},
		{"empty line", "", 5, ""},
		{"zero width", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newView(tt.line, 1, tt.width)
			got := v.VisibleLine(0)
			if string(got) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			if len(got) > tt.width {
				t.Errorf("visible line longer than width: %d > %d", len(got), tt.width)
			}
		})
	}
}

func TestVisibleLineWithHorizontalOffset(t *testing.T) {
	v := newView("abcdefghij\nxy\n", 2, 4)
	v.Navigate(7, 0)

	if v.StartCol() != 4 {
		t.Fatalf("expected start col 4, got %d", v.StartCol())
	}
	if got := string(v.VisibleLine(0)); got != "efgh" {
		t.Errorf("expected 'efgh', got %q", got)
	}
	if got := v.VisibleLine(1); len(got) != 0 {
		t.Errorf("line shorter than offset should be empty, got %q", got)
	}
}

func TestVisibleLineOutOfRange(t *testing.T) {
	v := newView("a\nb\n", 3, 5)

	for _, row := range []int{-1, 2, 3, 50} {
		if got := v.VisibleLine(row); got == nil || len(got) != 0 {
			t.Errorf("VisibleLine(%d) should be an empty slice, got %q", row, got)
		}
	}
}

func TestVisibleTextLossy(t *testing.T) {
	v := newView("a\xffb", 1, 10)

	if got := v.VisibleText(0); got != "a�b" {
		t.Errorf("expected replacement character, got %q", got)
	}
}

func TestNavigate(t *testing.T) {
	v := newView("abc\ndef\n", 10, 10)

	v.Navigate(1, 0)
	v.Navigate(0, 1)
	if v.Cursor() != (Cursor{X: 1, Y: 1}) {
		t.Errorf("expected (1,1), got %+v", v.Cursor())
	}

	v.Navigate(-5, -5)
	if v.Cursor() != (Cursor{}) {
		t.Errorf("expected cursor clamped to origin, got %+v", v.Cursor())
	}
}

func TestNavigatePastContent(t *testing.T) {
	v := newView("ab\n", 10, 10)
	v.Navigate(20, 5)

	if v.Cursor() != (Cursor{X: 20, Y: 5}) {
		t.Errorf("navigation should not clamp to content, got %+v", v.Cursor())
	}
}

func TestNavigateScrollsVertically(t *testing.T) {
	v := newView("0\n1\n2\n3\n4\n5\n", 2, 10)

	v.Navigate(0, 3)
	if v.StartLine() != 2 {
		t.Errorf("expected start line 2, got %d", v.StartLine())
	}
	if got := v.Render(); got != "2\n3" {
		t.Errorf("expected '2\\n3', got %q", got)
	}

	v.Navigate(0, -3)
	if v.StartLine() != 0 {
		t.Errorf("expected start line 0 after moving back up, got %d", v.StartLine())
	}
}

func TestInsert(t *testing.T) {
	v := newView("ac\n", 5, 10)
	v.Navigate(1, 0)

	if err := v.Insert('b'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if string(v.Bytes()) != "abc\n" {
		t.Errorf("expected 'abc\\n', got %q", v.Bytes())
	}
	if v.Cursor() != (Cursor{X: 2, Y: 0}) {
		t.Errorf("expected cursor (2,0), got %+v", v.Cursor())
	}
}

func TestInsertMultiByte(t *testing.T) {
	v := New(buffer.New(), 5, 10)

	if err := v.Insert('é'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if string(v.Bytes()) != "é" {
		t.Errorf("expected 'é', got %q", v.Bytes())
	}
	if v.Cursor().X != 2 {
		t.Errorf("cursor should move past both bytes, got %+v", v.Cursor())
	}
}

func TestInsertClampsCursor(t *testing.T) {
	v := newView("ab\ncd\n", 5, 10)
	v.Navigate(9, 9)

	if err := v.Insert('!'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if string(v.Bytes()) != "ab\ncd!\n" {
		t.Errorf("expected insert at end of last line, got %q", v.Bytes())
	}
	if v.Cursor() != (Cursor{X: 3, Y: 1}) {
		t.Errorf("expected cursor (3,1), got %+v", v.Cursor())
	}
}

func TestInsertScrollsHorizontally(t *testing.T) {
	v := New(buffer.New(), 1, 3)
	for _, r := range "abcde" {
		if err := v.Insert(r); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	if v.StartCol() != 3 {
		t.Errorf("expected start col 3, got %d", v.StartCol())
	}
	if got := v.Render(); got != "de" {
		t.Errorf("expected 'de', got %q", got)
	}
}

func TestInsertNewLine(t *testing.T) {
	v := newView("abcd\n", 5, 10)
	v.Navigate(2, 0)

	if err := v.InsertNewLine(); err != nil {
		t.Fatalf("insert newline failed: %v", err)
	}
	if string(v.Bytes()) != "ab\ncd\n" {
		t.Errorf("expected 'ab\\ncd\\n', got %q", v.Bytes())
	}
	if v.Cursor() != (Cursor{X: 0, Y: 1}) {
		t.Errorf("expected cursor (0,1), got %+v", v.Cursor())
	}
}

func TestInsertNewLineEmptyBuffer(t *testing.T) {
	v := New(buffer.New(), 5, 10)

	if err := v.InsertNewLine(); err != nil {
		t.Fatalf("insert newline failed: %v", err)
	}
	if v.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", v.LineCount())
	}
}

func TestDelete(t *testing.T) {
	v := newView("abc", 5, 10)
	v.Navigate(3, 0)

	if err := v.Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if string(v.Bytes()) != "ab" {
		t.Errorf("expected 'ab', got %q", v.Bytes())
	}
	if v.Cursor().X != 2 {
		t.Errorf("expected cursor column 2, got %d", v.Cursor().X)
	}
}

func TestDeleteMergesLines(t *testing.T) {
	v := newView("ab\ncd", 5, 10)
	v.Navigate(0, 1)

	if err := v.Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if v.LineCount() != 1 {
		t.Fatalf("expected 1 line, got %d", v.LineCount())
	}
	if line, _ := v.Line(0); string(line) != "abcd" {
		t.Errorf("expected 'abcd', got %q", line)
	}
	if v.Cursor() != (Cursor{X: 2, Y: 0}) {
		t.Errorf("expected cursor (2,0), got %+v", v.Cursor())
	}
}

func TestDeleteAtOrigin(t *testing.T) {
	v := newView("ab", 5, 10)

	if err := v.Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if string(v.Bytes()) != "ab" {
		t.Errorf("delete at origin should do nothing, got %q", v.Bytes())
	}

	empty := New(buffer.New(), 5, 10)
	if err := empty.Delete(); err != nil {
		t.Errorf("delete in empty buffer should not fail, got %v", err)
	}
}

func TestDeleteClampsCursor(t *testing.T) {
	v := newView("ab\ncd\n", 5, 10)
	v.Navigate(7, 4)

	if err := v.Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if string(v.Bytes()) != "ab\nc\n" {
		t.Errorf("expected last char of last line deleted, got %q", v.Bytes())
	}
	if v.Cursor() != (Cursor{X: 1, Y: 1}) {
		t.Errorf("expected cursor (1,1), got %+v", v.Cursor())
	}
}

func TestScreenCursor(t *testing.T) {
	v := newView("héllo\n", 3, 10)
	v.Navigate(3, 0) // after the two-byte é

	x, y := v.ScreenCursor()
	if x != 2 || y != 0 {
		t.Errorf("expected screen cursor (2,0), got (%d,%d)", x, y)
	}

	v.Navigate(5, 0) // two columns past the end of the line
	x, _ = v.ScreenCursor()
	if x != 7 {
		t.Errorf("expected screen column 7, got %d", x)
	}
}

func TestScreenCursorAfterScroll(t *testing.T) {
	v := newView("0\n1\n2\n3\n4\n", 2, 10)
	v.Navigate(0, 4)

	_, y := v.ScreenCursor()
	if y != 1 {
		t.Errorf("expected cursor on last visible row, got %d", y)
	}
}
