package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "gauntlet",
		Short:         "Score automated coding attempts and compare configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newRunCommand(),
		newReportCommand(),
		newCompareCommand(),
	)

	return cmd
}
