package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mmo-importer/internal/app/importer"
	"github.com/heartmarshall/mmo-importer/internal/domain"
)

// acknowledgeFlag must be passed to run: the output replaces the working
// dictionary database once it is loaded downstream.
const acknowledgeFlag = "i-realize-that-this-will-nuke-the-working-mmo-db"

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		overrides    importOverrides
		acknowledged bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Convert the legacy export and write entries and leftovers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !acknowledged {
				return fmt.Errorf("%w: pass --%s to confirm", domain.ErrNotAcknowledged, acknowledgeFlag)
			}

			cfg, logger, err := ctx.load(cmd, &overrides)
			if err != nil {
				return err
			}

			res, err := importer.Run(cfg.Import, importer.Options{Acknowledged: acknowledged}, logger)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRunSummary(res))
			return nil
		},
	}

	overrides.bind(cmd)
	cmd.Flags().BoolVar(&acknowledged, acknowledgeFlag, false,
		"Confirm that the output will replace the working MMO dictionary database")

	return cmd
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var overrides importOverrides

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the legacy export and convert it in memory without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := ctx.load(cmd, &overrides)
			if err != nil {
				return err
			}

			res, err := importer.Run(cfg.Import, importer.Options{DryRun: true}, logger)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRunSummary(res))
			return nil
		},
	}

	overrides.bind(cmd)
	return cmd
}
