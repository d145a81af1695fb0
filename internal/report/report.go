// Package report renders human-readable summaries of a benchmark run.
// Rendering only; all statistics come precomputed from the aggregator.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/benchforge/gauntlet/internal/aggregate"
	"github.com/benchforge/gauntlet/internal/models"
)

// BaselineConfigName is the configuration name that triggers the
// improvement-vs-baseline section.
const BaselineConfigName = "baseline"

var (
	heading  = color.New(color.Bold)
	positive = color.New(color.FgGreen)
	negative = color.New(color.FgRed)
)

// Write renders the full console report for a run. Configuration
// iteration order is unspecified in the data model, so names are
// sorted here for deterministic output.
func Write(w io.Writer, run *models.BenchmarkRun) {
	names := configNames(run)

	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, " %s\n", heading.Sprintf("BENCHMARK RUN %s", run.RunID))
	fmt.Fprintf(w, " corpus %s v%s, %d configuration(s), took %s\n",
		run.CorpusName, run.CorpusVersion, len(names), run.Duration.Round(time.Millisecond))
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w)

	writeSummaryTable(w, run, names)
	writeDifficultyTable(w, run, names)

	if _, ok := run.Configs[BaselineConfigName]; ok {
		writeBaselineSection(w, run, names)
	}
}

func configNames(run *models.BenchmarkRun) []string {
	names := make([]string, 0, len(run.Configs))
	for name := range run.Configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeSummaryTable(w io.Writer, run *models.BenchmarkRun, names []string) {
	fmt.Fprintln(w, heading.Sprint(" SUMMARY"))
	fmt.Fprintf(w, "  %-20s  %8s  %8s  %10s  %12s\n", "Config", "Attempts", "Success", "Mean", "Duration")

	for _, name := range names {
		s := run.Configs[name]
		fmt.Fprintf(w, "  %-20s  %8d  %7.1f%%  %10.3f  %12s\n",
			name, s.Total, s.SuccessRate*100, s.MeanScore, s.TotalDuration.Round(time.Millisecond))
	}
	fmt.Fprintln(w)
}

func writeDifficultyTable(w io.Writer, run *models.BenchmarkRun, names []string) {
	tiers := []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard}

	fmt.Fprintln(w, heading.Sprint(" SUCCESS RATE BY DIFFICULTY"))
	fmt.Fprintf(w, "  %-20s", "Config")
	for _, tier := range tiers {
		fmt.Fprintf(w, "  %8s", tier)
	}
	fmt.Fprintln(w)

	for _, name := range names {
		s := run.Configs[name]
		fmt.Fprintf(w, "  %-20s", name)
		for _, tier := range tiers {
			if p, ok := s.ByDifficulty[string(tier)]; ok {
				fmt.Fprintf(w, "  %7.1f%%", p.SuccessRate*100)
			} else {
				fmt.Fprintf(w, "  %8s", "-")
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func writeBaselineSection(w io.Writer, run *models.BenchmarkRun, names []string) {
	fmt.Fprintln(w, heading.Sprint(" IMPROVEMENT VS BASELINE"))

	for _, name := range names {
		if name == BaselineConfigName {
			continue
		}

		cmp, err := aggregate.Compare(run, BaselineConfigName, name)
		if err != nil {
			// both names come from the run itself, so this is unreachable
			continue
		}

		delta := fmt.Sprintf("%+.1f pp", cmp.Delta)
		switch {
		case cmp.Delta > 0:
			delta = positive.Sprint(delta)
		case cmp.Delta < 0:
			delta = negative.Sprint(delta)
		}

		marker := ""
		if cmp.Significant {
			marker = " (significant)"
		}

		fmt.Fprintf(w, "  %-20s  %s%s\n", name, delta, marker)
	}
	fmt.Fprintln(w)
}
