package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
log:
  level: "debug"
  format: "json"

import:
  input_path: "/data/legacy-mmo-dump.json"
  output_dir: "/data/out"
  entries_file: "entries.yaml"
  leftovers_file: "leftovers.json"
  entries_format: "yaml"
  leftovers_format: "json"
  first_id: 1000
  resolve_report: "links.json"
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Import.InputPath != "/data/legacy-mmo-dump.json" {
		t.Errorf("InputPath = %q", cfg.Import.InputPath)
	}
	if cfg.Import.EntriesFormat != "yaml" {
		t.Errorf("EntriesFormat = %q, want yaml", cfg.Import.EntriesFormat)
	}
	if cfg.Import.FirstID != 1000 {
		t.Errorf("FirstID = %d, want 1000", cfg.Import.FirstID)
	}
	if got := cfg.Import.EntriesPath(); got != filepath.Join("/data/out", "entries.yaml") {
		t.Errorf("EntriesPath() = %q", got)
	}
	if got := cfg.Import.ResolveReportPath(); got != filepath.Join("/data/out", "links.json") {
		t.Errorf("ResolveReportPath() = %q", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log defaults = %+v", cfg.Log)
	}
	if cfg.Import.InputPath != "./legacy-mmo-dump.json" {
		t.Errorf("InputPath default = %q", cfg.Import.InputPath)
	}
	if cfg.Import.EntriesFile != "entries.json" || cfg.Import.LeftoversFile != "leftovers.json" {
		t.Errorf("file defaults = %q, %q", cfg.Import.EntriesFile, cfg.Import.LeftoversFile)
	}
	if cfg.Import.EntriesFormat != "json" || cfg.Import.LeftoversFormat != "json" {
		t.Errorf("format defaults = %q, %q", cfg.Import.EntriesFormat, cfg.Import.LeftoversFormat)
	}
	if cfg.Import.FirstID != 100 {
		t.Errorf("FirstID default = %d, want 100", cfg.Import.FirstID)
	}
	if cfg.Import.ResolveReportPath() != "" {
		t.Errorf("resolve report should be disabled by default")
	}
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "import:\n  input_path: in.json\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Import.InputPath != "in.json" {
		t.Errorf("InputPath = %q", cfg.Import.InputPath)
	}
	if cfg.Import.FirstID != 100 {
		t.Errorf("FirstID = %d, want default 100", cfg.Import.FirstID)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_IgnoresEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("IMPORT_FIRST_ID", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Import.FirstID != 100 {
		t.Errorf("environment must not change config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Log: LogConfig{Level: "info", Format: "text"},
			Import: ImportConfig{
				InputPath: "in.json", OutputDir: ".",
				EntriesFile: "entries.json", LeftoversFile: "leftovers.json",
				EntriesFormat: "json", LeftoversFormat: "json", FirstID: 100,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "uppercase format normalized", mutate: func(c *Config) { c.Import.EntriesFormat = " TOML " }},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: "level"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "format"},
		{name: "empty input", mutate: func(c *Config) { c.Import.InputPath = " " }, wantErr: "input_path"},
		{name: "same output file", mutate: func(c *Config) { c.Import.LeftoversFile = "entries.json" }, wantErr: "must differ"},
		{name: "bad entries format", mutate: func(c *Config) { c.Import.EntriesFormat = "nt" }, wantErr: "entries_format"},
		{name: "toml leftovers", mutate: func(c *Config) { c.Import.LeftoversFormat = "toml" }, wantErr: "leftovers_format"},
		{name: "zero first id", mutate: func(c *Config) { c.Import.FirstID = 0 }, wantErr: "first_id"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
