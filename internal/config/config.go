package config

import (
	"time"

	"github.com/conn-castle/wtg/internal/messages"
)

// Config is the wtg configuration file.
type Config struct {
	BCDEdit BCDEditConfig `toml:"bcdedit"`
	Pacing  PacingConfig  `toml:"pacing"`
	Entry   EntryConfig   `toml:"entry"`
	Tuning  TuningConfig  `toml:"tuning"`
}

// BCDEditConfig locates the boot configuration tool and store.
type BCDEditConfig struct {
	// Path is the tool executable. When empty, the tool is looked up on PATH.
	Path string `toml:"path"`
	// StoreFile is the store file name under <source>\Boot.
	StoreFile string `toml:"store_file"`
}

// PacingConfig holds the waits between successive tool invocations.
type PacingConfig struct {
	DirectiveDelay string `toml:"directive_delay"`
	EntryDelay     string `toml:"entry_delay"`
}

// EntryConfig controls the dedicated boot entry.
type EntryConfig struct {
	Enabled *bool  `toml:"enabled"`
	Label   string `toml:"label"`
}

// TuningConfig controls the optional optimization batches.
type TuningConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	enabled := true
	return &Config{
		BCDEdit: BCDEditConfig{
			Path:      messages.ConfigDefaultToolPath,
			StoreFile: messages.ConfigDefaultStoreFile,
		},
		Pacing: PacingConfig{
			DirectiveDelay: messages.ConfigDefaultDirectiveWait,
			EntryDelay:     messages.ConfigDefaultEntryWait,
		},
		Entry: EntryConfig{
			Enabled: &enabled,
			Label:   messages.ConfigDefaultEntryLabel,
		},
	}
}

// applyDefaults fills unset keys from Default. Path is left alone so an
// explicit empty value still means "look it up on PATH".
func (c *Config) applyDefaults(pathSet bool) {
	d := Default()
	if !pathSet {
		c.BCDEdit.Path = d.BCDEdit.Path
	}
	if c.BCDEdit.StoreFile == "" {
		c.BCDEdit.StoreFile = d.BCDEdit.StoreFile
	}
	if c.Pacing.DirectiveDelay == "" {
		c.Pacing.DirectiveDelay = d.Pacing.DirectiveDelay
	}
	if c.Pacing.EntryDelay == "" {
		c.Pacing.EntryDelay = d.Pacing.EntryDelay
	}
	if c.Entry.Enabled == nil {
		c.Entry.Enabled = d.Entry.Enabled
	}
	if c.Entry.Label == "" {
		c.Entry.Label = d.Entry.Label
	}
}

// EntryEnabled reports whether a dedicated boot entry should be created.
func (c *Config) EntryEnabled() bool {
	return c.Entry.Enabled == nil || *c.Entry.Enabled
}

// DirectiveDelay returns the wait between modification directives.
// Validate guarantees the value parses.
func (c *Config) DirectiveDelay() time.Duration {
	d, _ := time.ParseDuration(c.Pacing.DirectiveDelay)
	return d
}

// EntryDelay returns the wait between entry configuration directives.
func (c *Config) EntryDelay() time.Duration {
	d, _ := time.ParseDuration(c.Pacing.EntryDelay)
	return d
}
