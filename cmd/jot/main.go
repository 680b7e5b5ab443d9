// Package main is the entry point for the jot editor.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/jot/internal/app"
	"github.com/dshills/jot/internal/config"
	"github.com/dshills/jot/internal/project/vfs"
	"github.com/dshills/jot/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintf(stderr, "jot %s\n", version)
		fmt.Fprintf(stderr, "Commit: %s\n", commit)
		fmt.Fprintf(stderr, "Built: %s\n", date)
		return exitOK
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(stderr, "Error: standard input is not a terminal")
		return exitError
	}

	fsys := vfs.NewOSFS()
	cfg, err := loadConfig(fsys, opts, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	logger := app.NullLogger
	if cfg.Logging.File != "" {
		l, f, err := app.OpenLogFile(cfg.Logging.File, app.ParseLogLevel(cfg.Logging.Level))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		defer f.Close()
		logger = l
	}
	logger.Info("jot %s starting", version)

	renderOpts := renderOptions(cfg)
	application, err := app.New(app.Options{
		Path:   opts.path,
		FS:     fsys,
		Height: cfg.Editor.DefaultHeight,
		Width:  cfg.Editor.DefaultWidth,
		Render: &renderOpts,
		Logger: logger,
	})
	if err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return exitError
	}
	if err := application.SetBackend(terminal); err != nil {
		fmt.Fprintf(stderr, "Error: failed to set backend: %v\n", err)
		return exitError
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	// Run restores the terminal before returning.
	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return exitOK
		}
		logger.Error("%v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	return exitOK
}

// loadConfig builds the configuration from the settings file, the
// environment and the command line, in increasing priority.
func loadConfig(fsys vfs.VFS, opts cliOptions, lookup config.LookupFunc) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(fsys, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFileSet {
		cfg.Logging.File = opts.logFile
	}
	return cfg, nil
}
