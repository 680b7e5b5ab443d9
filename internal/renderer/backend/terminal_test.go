package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func newSimTerminal(t *testing.T) *Terminal {
	t.Helper()
	term := NewTerminalWithScreen(tcell.NewSimulationScreen("UTF-8"))
	if err := term.Init(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term
}

func TestTerminalSetGetCell(t *testing.T) {
	term := newSimTerminal(t)

	style := DefaultStyle.
		WithForeground(RGB(colorful.Color{R: 1})).
		WithBackground(RGB(colorful.Color{B: 1})).
		WithBold(true)
	term.SetCell(2, 1, NewCell('Z', style))

	got := term.GetCell(2, 1)
	if got.Rune != 'Z' {
		t.Errorf("expected 'Z', got %q", got.Rune)
	}
	if !got.Style.Bold {
		t.Error("expected bold")
	}
	if got.Style.Foreground.Hex() != "#ff0000" {
		t.Errorf("expected fg #ff0000, got %s", got.Style.Foreground.Hex())
	}
	if got.Style.Background.Hex() != "#0000ff" {
		t.Errorf("expected bg #0000ff, got %s", got.Style.Background.Hex())
	}
}

func TestTerminalPostEvent(t *testing.T) {
	term := newSimTerminal(t)

	term.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'q'})
	term.PostEvent(Event{Type: EventInterrupt})

	for {
		ev := term.PollEvent()
		if ev.Type == EventResize {
			// Init reports the initial size.
			continue
		}
		if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'q' {
			t.Fatalf("expected rune 'q', got %+v", ev)
		}
		break
	}
	if ev := term.PollEvent(); ev.Type != EventInterrupt {
		t.Errorf("expected interrupt, got %+v", ev)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name    string
		key     tcell.Key
		r       rune
		mod     ModMask
		want    Key
		wantR   rune
		wantMod ModMask
	}{
		{"rune", tcell.KeyRune, 'x', ModNone, KeyRune, 'x', ModNone},
		{"escape", tcell.KeyEscape, 0, ModNone, KeyEscape, 0, ModNone},
		{"enter", tcell.KeyEnter, 0, ModNone, KeyEnter, 0, ModNone},
		{"tab", tcell.KeyTab, 0, ModNone, KeyTab, 0, ModNone},
		{"backspace", tcell.KeyBackspace, 0, ModNone, KeyBackspace, 0, ModNone},
		{"backspace2", tcell.KeyBackspace2, 0, ModNone, KeyBackspace, 0, ModNone},
		{"left", tcell.KeyLeft, 0, ModNone, KeyLeft, 0, ModNone},
		{"ctrl+s", tcell.KeyCtrlS, 19, ModCtrl, KeyRune, 's', ModCtrl},
		{"ctrl+a", tcell.KeyCtrlA, 1, ModNone, KeyRune, 'a', ModCtrl},
		{"f1", tcell.KeyF1, 0, ModNone, KeyNone, 0, ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, r, mod := convertKey(tt.key, tt.r, tt.mod)
			if k != tt.want || r != tt.wantR || mod != tt.wantMod {
				t.Errorf("expected (%v, %q, %v), got (%v, %q, %v)", tt.want, tt.wantR, tt.wantMod, k, r, mod)
			}
		})
	}
}

func TestConvertEvent(t *testing.T) {
	ev := convertEvent(tcell.NewEventResize(100, 30))
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 30 {
		t.Errorf("unexpected resize conversion %+v", ev)
	}

	ev = convertEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift))
	if ev.Type != EventKey || ev.Key != KeyUp || !ev.Mod.Has(ModShift) {
		t.Errorf("unexpected key conversion %+v", ev)
	}

	ev = convertEvent(tcell.NewEventInterrupt(nil))
	if ev.Type != EventInterrupt {
		t.Errorf("expected interrupt, got %+v", ev)
	}
}

func TestConvertModRoundTrip(t *testing.T) {
	for _, m := range []ModMask{ModNone, ModShift, ModCtrl, ModAlt, ModMeta, ModCtrl | ModAlt} {
		if got := convertMod(convertToTcellMod(m)); got != m {
			t.Errorf("round trip of %v gave %v", m, got)
		}
	}
}
