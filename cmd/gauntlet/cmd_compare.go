package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchforge/gauntlet/internal/aggregate"
	"github.com/benchforge/gauntlet/internal/store"
)

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <run.json> <baseline> <candidate>",
		Short: "Compare two configurations from a saved run",
		Args:  cobra.ExactArgs(3),
		RunE:  compareCommandE,
	}
}

func compareCommandE(cmd *cobra.Command, args []string) error {
	run, err := store.Load(args[0])
	if err != nil {
		return err
	}

	cmp, err := aggregate.Compare(run, args[1], args[2])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "baseline   %-20s  %.1f%%\n", cmp.Baseline, cmp.BaselineRate*100)
	fmt.Fprintf(out, "candidate  %-20s  %.1f%%\n", cmp.Candidate, cmp.CandidateRate*100)
	fmt.Fprintf(out, "delta      %+.1f pp\n", cmp.Delta)

	if cmp.Significant {
		fmt.Fprintf(out, "significant at the %.1f pp threshold\n", aggregate.SignificanceThresholdPts)
	} else {
		fmt.Fprintf(out, "not significant (threshold %.1f pp)\n", aggregate.SignificanceThresholdPts)
	}

	return nil
}
