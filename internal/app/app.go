// Package app provides the editor controller for jot. It owns the mode,
// the viewport and the file association, executes commands, and runs the
// terminal event loop.
package app

import (
	"sync/atomic"

	"github.com/dshills/jot/internal/engine/buffer"
	"github.com/dshills/jot/internal/input/mode"
	"github.com/dshills/jot/internal/project/vfs"
	"github.com/dshills/jot/internal/renderer"
	"github.com/dshills/jot/internal/renderer/backend"
	"github.com/dshills/jot/internal/renderer/viewport"
)

// Application is the editor controller.
// All methods except Shutdown must be called from one goroutine.
type Application struct {
	mode mode.Mode
	view *viewport.Viewport

	// path is the associated file; empty for an unnamed buffer.
	path string
	fs   vfs.VFS

	// savedRevision is the buffer revision last written to disk.
	savedRevision buffer.Revision

	message      string
	messageError bool

	logger  *Logger
	metrics *Metrics

	backend    backend.Backend
	renderer   *renderer.Renderer
	renderOpts renderer.Options
	running    atomic.Bool
}

// Options configures the application.
type Options struct {
	// Path is the file to edit. Empty starts an unnamed buffer.
	Path string

	// FS is the file system used for loading and saving. Defaults to the OS.
	FS vfs.VFS

	// Height and Width size the viewport until the backend reports a size.
	Height int
	Width  int

	// Render configures the renderer created by Run. Nil uses
	// renderer.DefaultOptions.
	Render *renderer.Options

	// Logger receives diagnostics. Defaults to NullLogger.
	Logger *Logger
}

// New creates an Application. When opts.Path is set the file is read
// through opts.FS; any read failure, including a missing file, is returned
// as a *LoadError and no Application is created.
func New(opts Options) (*Application, error) {
	if opts.FS == nil {
		opts.FS = vfs.NewOSFS()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Render == nil {
		def := renderer.DefaultOptions()
		opts.Render = &def
	}

	app := &Application{
		fs:         opts.FS,
		path:       opts.Path,
		logger:     opts.Logger.WithComponent("app"),
		metrics:    NewMetrics(),
		renderOpts: *opts.Render,
	}

	buf := buffer.New()
	if opts.Path != "" {
		data, err := opts.FS.ReadFile(opts.Path)
		if err != nil {
			return nil, &LoadError{Path: opts.Path, Err: err}
		}
		buf = buffer.FromBytes(data)
		app.logger.Info("opened %s (%d lines, %d bytes)", opts.Path, buf.LineCount(), len(data))
	}

	app.view = viewport.New(buf, opts.Height, opts.Width)
	app.savedRevision = buf.Revision()
	return app, nil
}

// Mode returns the current mode.
func (app *Application) Mode() mode.Mode {
	return app.mode
}

// Path returns the associated file path, or "" for an unnamed buffer.
func (app *Application) Path() string {
	return app.path
}

// Viewport returns the viewport. Callers must not mutate it directly.
func (app *Application) Viewport() *viewport.Viewport {
	return app.view
}

// Modified reports whether the buffer changed since it was loaded or saved.
func (app *Application) Modified() bool {
	return app.view.Revision() != app.savedRevision
}

// Message returns the current status message.
func (app *Application) Message() string {
	return app.message
}

// Metrics returns the activity counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Resize changes the viewport dimensions.
func (app *Application) Resize(height, width int) {
	app.view.Resize(height, width)
}

// Frame returns the state to display.
func (app *Application) Frame() renderer.Frame {
	v := app.view
	x, y := v.ScreenCursor()
	cur := v.Cursor()

	rows := v.VisibleRows()
	lines := make([][]byte, rows)
	for i := range lines {
		lines[i] = v.VisibleLine(i)
	}

	return renderer.Frame{
		Mode:         app.mode,
		Path:         app.path,
		Modified:     app.Modified(),
		Lines:        lines,
		CursorX:      x,
		CursorY:      y,
		Line:         cur.Y + 1,
		Col:          cur.X + 1,
		TotalLines:   v.LineCount(),
		Message:      app.message,
		MessageError: app.messageError,
	}
}

func (app *Application) setMessage(msg string, isError bool) {
	app.message = msg
	app.messageError = isError
}
