package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// Ensure Terminal implements Backend.
var _ Backend = (*Terminal)(nil)

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init puts the terminal into raw mode and switches to the alternate screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, cell.Combining, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, combc, style, width := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return Cell{
		Rune:      mainc,
		Combining: combc,
		Width:     width,
		Style:     convertTcellStyle(style),
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tcellStyle := tcell.CursorStyleSteadyBlock
	if style == CursorBar {
		tcellStyle = tcell.CursorStyleSteadyBar
	}
	t.screen.SetCursorStyle(tcellStyle)
}

// PollEvent blocks for the next event. The screen lock is not held while
// waiting so that PostEvent and painting stay possible.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return Event{Type: EventInterrupt}
		}
		if out := convertEvent(ev); out.Type != EventNone {
			return out
		}
	}
}

func (t *Terminal) PostEvent(event Event) {
	var tcellEv tcell.Event
	switch event.Type {
	case EventKey:
		tcellEv = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	case EventInterrupt:
		tcellEv = tcell.NewEventInterrupt(nil)
	default:
		return
	}
	_ = t.screen.PostEvent(tcellEv) // best-effort; event queue may be full
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		r, g, b := s.Foreground.RGB255()
		style = style.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if !s.Background.IsDefault() {
		r, g, b := s.Background.RGB255()
		style = style.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	return style
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) Style {
	fg, bg, attrs := ts.Decompose()
	return Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
		Bold:       attrs&tcell.AttrBold != 0,
		Reverse:    attrs&tcell.AttrReverse != 0,
	}
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) Color {
	if tc == tcell.ColorDefault {
		return ColorDefault
	}
	r, g, b := tc.RGB()
	return RGB(colorfulFromRGB255(r, g, b))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, r, mod := convertKey(e.Key(), e.Rune(), convertMod(e.Modifiers()))
		return Event{Type: EventKey, Key: key, Rune: r, Mod: mod}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key to our Key type. Control codes that have
// no dedicated key are reported as their letter with ModCtrl.
func convertKey(k tcell.Key, r rune, mod ModMask) (Key, rune, ModMask) {
	switch k {
	case tcell.KeyRune:
		return KeyRune, r, mod
	case tcell.KeyEscape:
		return KeyEscape, 0, mod
	case tcell.KeyEnter:
		return KeyEnter, 0, mod
	case tcell.KeyTab:
		return KeyTab, 0, mod
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, 0, mod
	case tcell.KeyDelete:
		return KeyDelete, 0, mod
	case tcell.KeyHome:
		return KeyHome, 0, mod
	case tcell.KeyEnd:
		return KeyEnd, 0, mod
	case tcell.KeyPgUp:
		return KeyPageUp, 0, mod
	case tcell.KeyPgDn:
		return KeyPageDown, 0, mod
	case tcell.KeyUp:
		return KeyUp, 0, mod
	case tcell.KeyDown:
		return KeyDown, 0, mod
	case tcell.KeyLeft:
		return KeyLeft, 0, mod
	case tcell.KeyRight:
		return KeyRight, 0, mod
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyRune, 'a' + rune(k-tcell.KeyCtrlA), mod | ModCtrl
	}
	return KeyNone, 0, mod
}

// convertToTcellKey converts our Key to tcell.Key.
func convertToTcellKey(k Key) tcell.Key {
	switch k {
	case KeyEscape:
		return tcell.KeyEscape
	case KeyEnter:
		return tcell.KeyEnter
	case KeyTab:
		return tcell.KeyTab
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyDelete:
		return tcell.KeyDelete
	case KeyHome:
		return tcell.KeyHome
	case KeyEnd:
		return tcell.KeyEnd
	case KeyPageUp:
		return tcell.KeyPgUp
	case KeyPageDown:
		return tcell.KeyPgDn
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	default:
		return tcell.KeyRune
	}
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

// convertToTcellMod converts our ModMask to tcell.ModMask.
func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	if m&ModShift != 0 {
		result |= tcell.ModShift
	}
	if m&ModCtrl != 0 {
		result |= tcell.ModCtrl
	}
	if m&ModAlt != 0 {
		result |= tcell.ModAlt
	}
	if m&ModMeta != 0 {
		result |= tcell.ModMeta
	}
	return result
}
