// Package input turns key events into editor commands.
//
// The interpreter is a pure function of a key event and the current
// mode. It holds no state and never fails: a key with no binding in the
// given mode is reported as unmapped and the caller ignores it.
//
// # Bindings
//
//   - Normal mode: h j k l move, i enters insert mode, s w Ctrl+S save, q quits
//   - Insert mode: printable runes, Space and Tab insert; Enter splits the
//     line; Backspace deletes; Escape returns to normal mode
//   - Arrow keys move the cursor and Ctrl+S saves in either mode
//
// # Usage
//
//	cmd, ok := input.Parse(ev, app.Mode())
//	if !ok {
//	    return // unmapped
//	}
//	sig, err := app.Execute(cmd)
package input
