package config

import "strings"

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "JOT_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from environment variables:
//
//	JOT_LOG_LEVEL  logging.level
//	JOT_LOG_FILE   logging.file
//
// Empty string values are treated as valid values, not as unset.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		level := strings.ToLower(strings.TrimSpace(v))
		if !validLevels[level] {
			return &ValidationError{Path: "logging.level", Value: v, Message: "from " + EnvPrefix + "LOG_LEVEL: must be one of debug, info, warn, error"}
		}
		c.Logging.Level = level
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok {
		c.Logging.File = v
	}
	return nil
}
