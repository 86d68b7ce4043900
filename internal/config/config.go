package config

import "path/filepath"

// Config is the root importer configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Import ImportConfig `yaml:"import"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env-default:"info"`
	Format string `yaml:"format" env-default:"text"`
}

// ImportConfig holds legacy import settings.
type ImportConfig struct {
	InputPath       string `yaml:"input_path"       env-default:"./legacy-mmo-dump.json"`
	OutputDir       string `yaml:"output_dir"       env-default:"."`
	EntriesFile     string `yaml:"entries_file"     env-default:"entries.json"`
	LeftoversFile   string `yaml:"leftovers_file"   env-default:"leftovers.json"`
	EntriesFormat   string `yaml:"entries_format"   env-default:"json"`
	LeftoversFormat string `yaml:"leftovers_format" env-default:"json"`
	FirstID         int    `yaml:"first_id"         env-default:"100"`
	ResolveReport   string `yaml:"resolve_report"`
}

// EntriesPath returns the converted entries output path.
func (c ImportConfig) EntriesPath() string {
	return filepath.Join(c.OutputDir, c.EntriesFile)
}

// LeftoversPath returns the leftover legacy records output path.
func (c ImportConfig) LeftoversPath() string {
	return filepath.Join(c.OutputDir, c.LeftoversFile)
}

// ResolveReportPath returns the resolve report path, or "" when the pass is disabled.
// Relative paths are placed under OutputDir.
func (c ImportConfig) ResolveReportPath() string {
	if c.ResolveReport == "" || filepath.IsAbs(c.ResolveReport) {
		return c.ResolveReport
	}
	return filepath.Join(c.OutputDir, c.ResolveReport)
}
