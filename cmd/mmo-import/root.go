package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/mmo-importer/internal/app"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	var flags globalFlags
	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "mmo-import",
		Short:         "Convert the legacy MMO dictionary export to the new entry schema",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newResolveCommand(ctx))

	return rootCmd
}
