package app

import (
	"fmt"

	"github.com/dshills/jot/internal/input"
	"github.com/dshills/jot/internal/project/vfs"
)

// Signal tells the event loop whether to keep going after a command.
type Signal int

const (
	// SignalContinue keeps the editor running.
	SignalContinue Signal = iota
	// SignalQuit asks the driver to restore the terminal and exit.
	SignalQuit
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case SignalContinue:
		return "continue"
	case SignalQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Execute applies one command. Errors are returned, never swallowed; the
// editor state stays consistent and the loop may continue after any of them.
// The previous status message is cleared first.
func (app *Application) Execute(cmd input.Command) (Signal, error) {
	app.metrics.RecordCommand()
	app.setMessage("", false)
	app.logger.Debug("execute %s", cmd)

	switch cmd.Kind {
	case input.CmdQuit:
		app.logger.Info("quit")
		return SignalQuit, nil

	case input.CmdMove:
		app.view.Navigate(cmd.DX, cmd.DY)

	case input.CmdSave:
		return SignalContinue, app.save()

	case input.CmdToggleMode:
		app.mode = app.mode.Toggle()

	case input.CmdInsert:
		if err := app.view.Insert(cmd.Char); err != nil {
			return SignalContinue, NewOperationError("insert", "", err)
		}

	case input.CmdInsertNewLine:
		if err := app.view.InsertNewLine(); err != nil {
			return SignalContinue, NewOperationError("newline", "", err)
		}

	case input.CmdDelete:
		if err := app.view.Delete(); err != nil {
			return SignalContinue, NewOperationError("delete", "", err)
		}

	default:
		return SignalContinue, fmt.Errorf("unknown command %s", cmd)
	}

	return SignalContinue, nil
}

// save writes the buffer to its file atomically. On failure the file on
// disk is left as it was.
func (app *Application) save() error {
	if app.path == "" {
		app.metrics.RecordSave(ErrNoFilePath)
		return NewOperationError("save", "", ErrNoFilePath)
	}

	data := app.view.Bytes()
	err := vfs.AtomicWriteFile(app.fs, app.path, data)
	app.metrics.RecordSave(err)
	if err != nil {
		return NewOperationError("save", app.path, err).WithContext("file unchanged")
	}

	app.savedRevision = app.view.Revision()
	app.setMessage(fmt.Sprintf("%q %dB written", app.path, len(data)), false)
	app.logger.Info("saved %s (%d bytes)", app.path, len(data))
	return nil
}
