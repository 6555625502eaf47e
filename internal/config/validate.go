package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/conn-castle/wtg/internal/messages"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	if c.BCDEdit.StoreFile == "" || strings.ContainsAny(c.BCDEdit.StoreFile, `\/:`) {
		return fmt.Errorf(messages.ConfigStoreFileInvalidFmt, path, c.BCDEdit.StoreFile)
	}
	if err := validateDelay(path, "pacing.directive_delay", c.Pacing.DirectiveDelay); err != nil {
		return err
	}
	if err := validateDelay(path, "pacing.entry_delay", c.Pacing.EntryDelay); err != nil {
		return err
	}
	if c.EntryEnabled() && strings.TrimSpace(c.Entry.Label) == "" {
		return fmt.Errorf(messages.ConfigEntryLabelRequired, path)
	}
	return nil
}

func validateDelay(path, key, value string) error {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fmt.Errorf(messages.ConfigDelayInvalidFmt, path, key, value)
	}
	return nil
}
