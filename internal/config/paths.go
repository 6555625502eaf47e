package config

import "path/filepath"

// DefaultPath is the config file location used when --config is not given.
// The leading tilde is expanded by Load.
var DefaultPath = filepath.Join("~", ".wtg", "config.toml")
