package main

import (
	"github.com/spf13/cobra"

	"github.com/benchforge/gauntlet/internal/report"
	"github.com/benchforge/gauntlet/internal/store"
)

func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <run.json>",
		Short: "Render the console report for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := store.Load(args[0])
			if err != nil {
				return err
			}

			report.Write(cmd.OutOrStdout(), run)
			return nil
		},
	}
}
