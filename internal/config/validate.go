package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.Editor.DefaultHeight < 1 {
		return &ValidationError{Path: "editor.default_height", Value: c.Editor.DefaultHeight, Message: "must be at least 1"}
	}
	if c.Editor.DefaultWidth < 1 {
		return &ValidationError{Path: "editor.default_width", Value: c.Editor.DefaultWidth, Message: "must be at least 1"}
	}
	if !validLevels[c.Logging.Level] {
		return &ValidationError{Path: "logging.level", Value: c.Logging.Level, Message: "must be one of debug, info, warn, error"}
	}

	colors := []struct {
		path  string
		value string
	}{
		{"ui.status_fg", c.UI.StatusFg},
		{"ui.status_bg", c.UI.StatusBg},
		{"ui.insert_bg", c.UI.InsertBg},
	}
	for _, col := range colors {
		if _, err := ParseColor(col.value); err != nil {
			return &ValidationError{Path: col.path, Value: col.value, Message: "expected #rrggbb", Err: err}
		}
	}
	return nil
}

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Colors is the parsed status line palette.
type Colors struct {
	StatusFg colorful.Color
	StatusBg colorful.Color
	InsertBg colorful.Color
}

// Colors returns the parsed UI colors. Invalid entries fall back to the
// default palette, so callers that skipped Validate still get usable colors.
func (c *Config) Colors() Colors {
	def := Default().UI
	parse := func(s, fallback string) colorful.Color {
		if col, err := ParseColor(s); err == nil {
			return col
		}
		col, _ := ParseColor(fallback)
		return col
	}
	return Colors{
		StatusFg: parse(c.UI.StatusFg, def.StatusFg),
		StatusBg: parse(c.UI.StatusBg, def.StatusBg),
		InsertBg: parse(c.UI.InsertBg, def.InsertBg),
	}
}
