package viewport

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	xunicode "golang.org/x/text/encoding/unicode"
)

// Text converts raw line bytes to displayable text. Invalid UTF-8 is
// replaced with U+FFFD; the conversion never fails.
func Text(b []byte) string {
	out, err := xunicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}

// ScreenCursor returns the cursor position relative to the window.
// The column is measured in terminal cells: visible text before the cursor
// counts by glyph width, and positions past the end of the line count one
// cell each.
func (v *Viewport) ScreenCursor() (x, y int) {
	y = v.cursor.Y - v.startLine

	line, _ := v.buf.Line(v.cursor.Y)
	lo := min(v.startCol, len(line))
	hi := max(min(v.cursor.X, len(line)), lo)
	x = DisplayWidth(Text(line[lo:hi]))

	if v.cursor.X > len(line) {
		x += max(v.cursor.X-max(len(line), v.startCol), 0)
	}
	return x, y
}

// Glyph is one displayed grapheme cluster.
type Glyph struct {
	Text  string
	Width int
}

// Glyphs splits text into display glyphs. Clusters that uniseg reports as
// zero width, such as tabs and other control characters, occupy one cell;
// non-printable ones are shown as a placeholder.
func Glyphs(s string) []Glyph {
	var out []Glyph
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		width := g.Width()
		if width > 0 {
			out = append(out, Glyph{Text: cluster, Width: width})
			continue
		}
		out = append(out, Glyph{Text: placeholder(cluster), Width: 1})
	}
	return out
}

// DisplayWidth returns the number of terminal cells Glyphs(s) occupies.
func DisplayWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += max(g.Width(), 1)
	}
	return width
}

func placeholder(cluster string) string {
	switch r := []rune(cluster)[0]; {
	case r == '\t':
		return " "
	case unicode.IsControl(r):
		return "\uFFFD"
	default:
		return cluster
	}
}
