package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/wtg/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax, filesystem, or other loading errors).
var ErrConfigValidation = errors.New("config validation failed")

// readFile and lookPath are replaced in tests.
var (
	readFile = os.ReadFile
	lookPath = exec.LookPath
)

// Load reads the config at path. A missing file at the default path yields
// Default; a missing file at an explicit path is an error.
func Load(path string, explicit bool) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	data, err := readFile(expanded)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, expanded, err)
	}
	return ParseConfig(data, expanded)
}

// ParseConfig parses and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	cfg.applyDefaults(hasKey(data, "bcdedit", "path"))
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// hasKey reports whether table.key is present in data, even when empty.
func hasKey(data []byte, table, key string) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	section, ok := raw[table].(map[string]any)
	if !ok {
		return false
	}
	_, ok = section[key]
	return ok
}

// ResolveToolPath returns the configured tool path, looking the tool up on
// PATH when none is configured.
func (c *Config) ResolveToolPath() (string, error) {
	if c.BCDEdit.Path != "" {
		return c.BCDEdit.Path, nil
	}
	path, err := lookPath(messages.ConfigDefaultToolName)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigToolNotFoundFmt, messages.ConfigDefaultToolName, err)
	}
	return path, nil
}
