package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mmo-importer/internal/app"
	"github.com/heartmarshall/mmo-importer/internal/config"
)

type commandContext struct {
	flags *globalFlags
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// load reads the configuration file, applies command-line overrides and
// builds the logger. overrides may be nil.
func (c *commandContext) load(cmd *cobra.Command, overrides *importOverrides) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(strings.TrimSpace(c.flags.config))
	if err != nil {
		return nil, nil, err
	}

	if c.flags.logLevel != "" {
		cfg.Log.Level = c.flags.logLevel
	}
	if c.flags.logFormat != "" {
		cfg.Log.Format = c.flags.logFormat
	}
	if overrides != nil {
		overrides.apply(cmd, &cfg.Import)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: validate: %w", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("configuration loaded",
		slog.String("version", app.BuildVersion()),
		slog.String("config", c.flags.config),
		slog.String("input", cfg.Import.InputPath),
		slog.String("output_dir", cfg.Import.OutputDir),
	)
	return cfg, logger, nil
}

// importOverrides are the import settings every converting command accepts.
type importOverrides struct {
	input           string
	outputDir       string
	entriesFile     string
	leftoversFile   string
	entriesFormat   string
	leftoversFormat string
	firstID         int
	resolveReport   string
}

func (o *importOverrides) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.input, "input", "i", "", "Legacy export JSON file (import.input_path)")
	f.StringVarP(&o.outputDir, "output-dir", "o", "", "Directory for output files (import.output_dir)")
	f.StringVar(&o.entriesFile, "entries-file", "", "Entries file name (import.entries_file)")
	f.StringVar(&o.leftoversFile, "leftovers-file", "", "Leftovers file name (import.leftovers_file)")
	f.StringVar(&o.entriesFormat, "entries-format", "", "Entries format: json, yaml, toml (import.entries_format)")
	f.StringVar(&o.leftoversFormat, "leftovers-format", "", "Leftovers format: json, yaml (import.leftovers_format)")
	f.IntVar(&o.firstID, "first-id", 0, "First allocated identifier (import.first_id)")
	f.StringVar(&o.resolveReport, "resolve-report", "", "Also write a cross-reference resolve report (import.resolve_report)")
}

func (o *importOverrides) apply(cmd *cobra.Command, cfg *config.ImportConfig) {
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.InputPath = o.input
	}
	if f.Changed("output-dir") {
		cfg.OutputDir = o.outputDir
	}
	if f.Changed("entries-file") {
		cfg.EntriesFile = o.entriesFile
	}
	if f.Changed("leftovers-file") {
		cfg.LeftoversFile = o.leftoversFile
	}
	if f.Changed("entries-format") {
		cfg.EntriesFormat = o.entriesFormat
	}
	if f.Changed("leftovers-format") {
		cfg.LeftoversFormat = o.leftoversFormat
	}
	if f.Changed("first-id") {
		cfg.FirstID = o.firstID
	}
	if f.Changed("resolve-report") {
		cfg.ResolveReport = o.resolveReport
	}
}
