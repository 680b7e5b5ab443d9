// Package renderer paints editor frames onto a terminal backend.
//
// A Frame is a read-only snapshot of what the editor wants on screen: the
// visible lines, the cursor in window coordinates, and the status line
// fields. The Renderer clears the backend, draws the text rows using
// grapheme-aware glyph widths, draws the status line on the last row and
// positions the cursor with a mode-specific style.
//
// Sub-packages:
//
//   - backend: terminal abstraction with tcell and in-memory implementations
//   - viewport: scrolling window over a text buffer
//   - statusline: bottom status line
package renderer
