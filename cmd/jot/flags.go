package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// errHelp is returned by parseFlags after printing usage for -help.
var errHelp = flag.ErrHelp

// cliOptions holds the parsed command line.
type cliOptions struct {
	configPath  string
	logLevel    string
	logFile     string
	logFileSet  bool
	showVersion bool

	// path is the file to edit; empty for an unnamed buffer.
	path string
}

// parseFlags parses args. At most one positional argument, the file to
// edit, is accepted.
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("jot", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(output, "jot - a small modal text editor\n\n")
		fmt.Fprintf(output, "Usage: jot [options] [file]\n\n")
		fmt.Fprintf(output, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nKeys:\n")
		fmt.Fprintf(output, "  normal  h j k l / arrows move, i insert, s w Ctrl+S save, q quit\n")
		fmt.Fprintf(output, "  insert  type to insert, Enter split, Backspace delete, Ctrl+S save, Esc normal\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "log-file" {
			opts.logFileSet = true
		}
	})

	// Validate log level
	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.logLevel)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.path = fs.Arg(0)
	default:
		fs.Usage()
		return opts, errors.New("at most one file may be given")
	}

	return opts, nil
}
