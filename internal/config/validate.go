package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	entriesFormats   = []string{"json", "yaml", "toml"}
	leftoversFormats = []string{"json", "yaml"}
	logLevels        = []string{"debug", "info", "warn", "error"}
	logFormats       = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading and again after CLI overrides; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(strings.TrimSpace(l.Level))) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(logLevels, ", "), l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(strings.TrimSpace(l.Format))) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(logFormats, ", "), l.Format)
	}
	return nil
}

func (c *ImportConfig) validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("input_path is required")
	}
	if strings.TrimSpace(c.EntriesFile) == "" || strings.TrimSpace(c.LeftoversFile) == "" {
		return fmt.Errorf("entries_file and leftovers_file are required")
	}
	if c.EntriesPath() == c.LeftoversPath() {
		return fmt.Errorf("entries_file and leftovers_file must differ (both %q)", c.EntriesFile)
	}
	c.EntriesFormat = strings.ToLower(strings.TrimSpace(c.EntriesFormat))
	if !slices.Contains(entriesFormats, c.EntriesFormat) {
		return fmt.Errorf("entries_format must be one of %s (got %q)", strings.Join(entriesFormats, ", "), c.EntriesFormat)
	}
	c.LeftoversFormat = strings.ToLower(strings.TrimSpace(c.LeftoversFormat))
	if !slices.Contains(leftoversFormats, c.LeftoversFormat) {
		return fmt.Errorf("leftovers_format must be one of %s (got %q); toml cannot keep source key order",
			strings.Join(leftoversFormats, ", "), c.LeftoversFormat)
	}
	if c.FirstID <= 0 {
		return fmt.Errorf("first_id must be > 0 (got %d)", c.FirstID)
	}
	return nil
}
