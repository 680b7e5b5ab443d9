package backend

import "github.com/lucasb-eyer/go-colorful"

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	rgb colorful.Color
	set bool
}

// ColorDefault uses the terminal's own foreground or background.
var ColorDefault = Color{}

// RGB returns a true color.
func RGB(c colorful.Color) Color {
	return Color{rgb: c.Clamped(), set: true}
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return !c.set
}

// RGB255 returns the 8-bit channels. The default color is black.
func (c Color) RGB255() (r, g, b uint8) {
	return c.rgb.RGB255()
}

// Hex returns the color as #rrggbb, or "default".
func (c Color) Hex() string {
	if !c.set {
		return "default"
	}
	return c.rgb.Hex()
}

// Style is a cell's colors and attributes.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Reverse    bool
}

// DefaultStyle is the terminal's default appearance.
var DefaultStyle = Style{}

// WithForeground returns s with fg set.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns s with bg set.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithBold returns s with bold set.
func (s Style) WithBold(bold bool) Style {
	s.Bold = bold
	return s
}

// Cell is one screen cell: a grapheme cluster and its style.
// Rune is the base character; Combining holds any following code points
// of the cluster. Width is the number of columns the cluster occupies.
type Cell struct {
	Rune      rune
	Combining []rune
	Width     int
	Style     Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// NewCell returns a single-width cell for r.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: 1, Style: style}
}

// Equals reports whether two cells render identically.
func (c Cell) Equals(other Cell) bool {
	if c.Rune != other.Rune || c.Width != other.Width || c.Style != other.Style {
		return false
	}
	if len(c.Combining) != len(other.Combining) {
		return false
	}
	for i := range c.Combining {
		if c.Combining[i] != other.Combining[i] {
			return false
		}
	}
	return true
}

// Text returns the cell's content as a string.
func (c Cell) Text() string {
	return string(append([]rune{c.Rune}, c.Combining...))
}

// colorfulFromRGB255 builds a colorful.Color from 8-bit channels.
func colorfulFromRGB255(r, g, b int32) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
