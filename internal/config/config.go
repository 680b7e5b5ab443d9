package config

import (
	"os"
	"path/filepath"
)

// Config holds all jot settings.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

// EditorConfig contains editing settings.
type EditorConfig struct {
	// DefaultHeight is the viewport height used when the terminal size is unknown.
	DefaultHeight int `toml:"default_height"`
	// DefaultWidth is the viewport width used when the terminal size is unknown.
	DefaultWidth int `toml:"default_width"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File is the log destination. Empty disables logging.
	File string `toml:"file"`
}

// UIConfig contains status line appearance settings.
type UIConfig struct {
	StatusLine bool   `toml:"status_line"`
	StatusFg   string `toml:"status_fg"`
	StatusBg   string `toml:"status_bg"`
	InsertBg   string `toml:"insert_bg"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			DefaultHeight: 24,
			DefaultWidth:  80,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			StatusLine: true,
			StatusFg:   "#000000",
			StatusBg:   "#87afd7",
			InsertBg:   "#87d787",
		},
	}
}

// DefaultPath returns the user settings path, normally
// $XDG_CONFIG_HOME/jot/config.toml. It returns "" when no
// configuration directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jot", "config.toml")
}
