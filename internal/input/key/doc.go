// Package key provides key event types for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// Events are produced by the terminal backend one at a time and consumed by
// the command interpreter. Nothing in this package buffers or peeks ahead.
package key
