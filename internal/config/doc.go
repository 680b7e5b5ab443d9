// Package config provides the configuration system for jot.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Command Line Flags      │  ← Highest priority (applied by cmd/jot)
//	├─────────────────────────────┤
//	│  2. Environment Variables   │  ← JOT_LOG_LEVEL, JOT_LOG_FILE
//	├─────────────────────────────┤
//	│  1. User Settings           │  ← ~/.config/jot/config.toml
//	├─────────────────────────────┤
//	│  0. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.Load(vfs.NewOSFS(), config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	cfg.ApplyEnv(os.LookupEnv)
//
// A missing settings file is not an error; the defaults are returned.
// Unknown keys, malformed TOML and invalid values are reported as
// *ParseError or *ValidationError.
package config
