package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/jot/internal/project/vfs"
)

// Load reads the TOML settings file at path on top of the defaults.
// A missing file or an empty path yields the defaults.
func Load(fsys vfs.VFS, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.decode(path, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromReader reads TOML settings from r on top of the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode("<reader>", r); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode merges TOML from r into c and validates the result.
// Keys absent from the document keep their current values.
func (c *Config) decode(source string, r io.Reader) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return newParseError(source, err)
	}
	return c.Validate()
}

// newParseError converts a go-toml error into a *ParseError with position
// information where the decoder provides it.
func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
		return pe
	}

	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		first := strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(first.Key(), ".")
	}
	return pe
}
