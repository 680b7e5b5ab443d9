package app

import (
	"errors"
	"time"

	"github.com/dshills/jot/internal/input"
	"github.com/dshills/jot/internal/input/key"
	"github.com/dshills/jot/internal/renderer"
	"github.com/dshills/jot/internal/renderer/backend"
)

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and processes events until a Quit command
// or an interrupt, then restores the terminal. A normal exit returns
// ErrQuit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()

	app.renderer = renderer.New(app.backend, app.renderOpts)
	app.fitToBackend()
	app.render()

	defer func() {
		app.logger.Debug("metrics: %s", app.metrics.Snapshot())
	}()

	for {
		ev := app.backend.PollEvent()
		handled, err := app.handleBackendEvent(ev)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return ErrQuit
			}
			app.logger.Error("%v", err)
			app.setMessage(err.Error(), true)
			handled = true
		}
		if handled {
			app.render()
		}
	}
}

// Shutdown asks a running event loop to stop. It is safe to call from any
// goroutine, for example a signal handler.
func (app *Application) Shutdown() {
	if app.running.Load() && app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// It reports whether the event changed anything that needs repainting, and
// returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) (bool, error) {
	switch ev.Type {
	case backend.EventResize:
		app.fitToBackend()
		return true, nil
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventInterrupt:
		app.logger.Info("interrupted")
		return false, ErrQuit
	default:
		return false, nil
	}
}

// handleKeyEvent interprets a key press in the current mode and executes
// the resulting command. Unmapped keys are dropped and report false.
func (app *Application) handleKeyEvent(ev backend.Event) (bool, error) {
	keyEv := convertToKeyEvent(ev)

	cmd, ok := input.Parse(keyEv, app.mode)
	if !ok {
		app.metrics.RecordUnmapped()
		app.logger.Debug("unmapped key %s in %s mode", keyEv, app.mode)
		return false, nil
	}

	sig, err := app.Execute(cmd)
	if sig == SignalQuit {
		return false, ErrQuit
	}
	return true, err
}

// fitToBackend sizes the viewport to the renderer's text area.
func (app *Application) fitToBackend() {
	height, width := app.renderer.TextArea()
	app.view.Resize(height, width)
	app.logger.Debug("resize %dx%d", width, height)
}

// render paints the current frame.
func (app *Application) render() {
	start := time.Now()
	app.renderer.Render(app.Frame())
	app.metrics.RecordRender(time.Since(start))
}

// convertToKeyEvent converts a backend.Event to a key.Event.
func convertToKeyEvent(ev backend.Event) key.Event {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	k := mapBackendKey(ev.Key, ev.Rune)
	if k == key.KeyRune {
		return key.NewRuneEvent(ev.Rune, mods)
	}
	return key.NewSpecialEvent(k, mods)
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key, r rune) key.Key {
	switch bk {
	case backend.KeyRune:
		if r == ' ' {
			return key.KeySpace
		}
		return key.KeyRune
	case backend.KeyEscape:
		return key.KeyEscape
	case backend.KeyEnter:
		return key.KeyEnter
	case backend.KeyTab:
		return key.KeyTab
	case backend.KeyBackspace:
		return key.KeyBackspace
	case backend.KeyDelete:
		return key.KeyDelete
	case backend.KeyHome:
		return key.KeyHome
	case backend.KeyEnd:
		return key.KeyEnd
	case backend.KeyPageUp:
		return key.KeyPageUp
	case backend.KeyPageDown:
		return key.KeyPageDown
	case backend.KeyUp:
		return key.KeyUp
	case backend.KeyDown:
		return key.KeyDown
	case backend.KeyLeft:
		return key.KeyLeft
	case backend.KeyRight:
		return key.KeyRight
	default:
		return key.KeyNone
	}
}
