package main

import (
	"github.com/dshills/jot/internal/config"
	"github.com/dshills/jot/internal/renderer"
	"github.com/dshills/jot/internal/renderer/backend"
	"github.com/dshills/jot/internal/renderer/statusline"
)

// renderOptions builds the renderer options from the UI settings.
func renderOptions(cfg *config.Config) renderer.Options {
	colors := cfg.Colors()
	fg := backend.RGB(colors.StatusFg)
	bar := backend.DefaultStyle.WithForeground(fg).WithBackground(backend.RGB(colors.StatusBg))

	return renderer.Options{
		StatusLine: cfg.UI.StatusLine,
		Palette: statusline.Palette{
			Bar:    bar,
			Normal: bar.WithBold(true),
			Insert: bar.WithBackground(backend.RGB(colors.InsertBg)).WithBold(true),
			Info:   bar,
			Error:  bar.WithBold(true),
		},
	}
}
