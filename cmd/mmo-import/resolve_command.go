package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mmo-importer/internal/adapter/export"
	"github.com/heartmarshall/mmo-importer/internal/app/resolver"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		entriesPath string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Link related-entry text in an entries file to entry ids",
		Long: "Reads an entries file written by `run` (format taken from the extension), " +
			"matches every related-entry text against entry headwords and writes a report. " +
			"The entries file is never modified.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, err := ctx.load(cmd, nil)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(entriesPath)
			if err != nil {
				return fmt.Errorf("read entries: %w", err)
			}
			entries, err := export.DecodeEntries(export.FormatFromPath(entriesPath), data)
			if err != nil {
				return err
			}

			ix := resolver.BuildIndex(entries, logger)
			report := resolver.Resolve(entries, ix, logger)

			if outPath == "" {
				out, err := export.EncodeJSON(report)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			out, err := export.Encode(export.FormatFromPath(outPath), report)
			if err != nil {
				return err
			}
			if err := export.WriteFile(outPath, out); err != nil {
				return err
			}
			logger.Info("resolve report written",
				slog.String("path", outPath),
				slog.Int("headwords", ix.Len()),
			)
			fmt.Fprintln(cmd.OutOrStdout(), renderResolveSummary(entriesPath, outPath, report))
			return nil
		},
	}

	cmd.Flags().StringVarP(&entriesPath, "entries", "e", "entries.json", "Entries file to resolve (json, yaml or toml)")
	cmd.Flags().StringVar(&outPath, "out", "", "Report file (format from extension); stdout as JSON when empty")

	return cmd
}
