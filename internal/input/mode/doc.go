// Package mode provides the modal editing state for jot.
//
// The editor has two modes:
//   - Normal mode: Navigation and commands
//   - Insert mode: Text input
//
// # Transitions
//
//	┌─────────┐   ToggleMode   ┌─────────┐
//	│ Normal  │ ─────────────▶ │ Insert  │
//	└─────────┘                └─────────┘
//	     ▲                          │
//	     └──────── ToggleMode ──────┘
//
// ToggleMode is the only transition, so toggling twice always returns to
// the starting mode. The zero value of Mode is Normal.
package mode
