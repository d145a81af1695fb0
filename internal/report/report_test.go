package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/benchforge/gauntlet/internal/aggregate"
	"github.com/benchforge/gauntlet/internal/models"
)

func foldAll(s *models.ConfigSummary, results ...models.AttemptResult) *models.ConfigSummary {
	aggregate.Fold(s, results...)
	return s
}

func sampleRun() *models.BenchmarkRun {
	run := models.NewBenchmarkRun("webapp-issues", "2.1.0")
	run.Duration = 2 * time.Minute

	run.Configs["baseline"] = foldAll(models.NewConfigSummary("baseline"),
		models.AttemptResult{IssueID: "ISS-1", Difficulty: models.DifficultyEasy, TaskType: models.TaskBugFix, Language: "go", Success: true, Score: 1.0},
		models.AttemptResult{IssueID: "ISS-2", Difficulty: models.DifficultyMedium, TaskType: models.TaskFeature, Language: "go", Score: 0.2},
	)

	run.Configs["with-skills"] = foldAll(models.NewConfigSummary("with-skills"),
		models.AttemptResult{IssueID: "ISS-1", Difficulty: models.DifficultyEasy, TaskType: models.TaskBugFix, Language: "go", Success: true, Score: 1.0},
		models.AttemptResult{IssueID: "ISS-2", Difficulty: models.DifficultyMedium, TaskType: models.TaskFeature, Language: "go", Success: true, Score: 0.9},
	)

	return run
}

func render(t *testing.T, run *models.BenchmarkRun) string {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	Write(&buf, run)
	return buf.String()
}

func TestWrite_SummaryTable(t *testing.T) {
	out := render(t, sampleRun())

	require.Contains(t, out, "SUMMARY")
	require.Contains(t, out, "webapp-issues v2.1.0")
	require.Contains(t, out, "baseline")
	require.Contains(t, out, "with-skills")
	require.Contains(t, out, "50.0%")  // baseline success rate
	require.Contains(t, out, "100.0%") // candidate success rate
}

func TestWrite_DifficultyTable(t *testing.T) {
	out := render(t, sampleRun())

	require.Contains(t, out, "SUCCESS RATE BY DIFFICULTY")
	require.Contains(t, out, "easy")
	require.Contains(t, out, "medium")

	// no hard-tier attempts exist, so that column renders a dash
	require.Contains(t, out, "-")
}

func TestWrite_BaselineSection(t *testing.T) {
	out := render(t, sampleRun())

	require.Contains(t, out, "IMPROVEMENT VS BASELINE")
	require.Contains(t, out, "+50.0 pp")
	require.Contains(t, out, "(significant)")
}

func TestWrite_NoBaselineNoSection(t *testing.T) {
	run := sampleRun()
	delete(run.Configs, "baseline")

	out := render(t, run)
	require.NotContains(t, out, "IMPROVEMENT VS BASELINE")
}

func TestWrite_ConfigsAreSorted(t *testing.T) {
	run := sampleRun()
	run.Configs["alpha"] = foldAll(models.NewConfigSummary("alpha"),
		models.AttemptResult{IssueID: "ISS-1", Difficulty: models.DifficultyEasy, TaskType: models.TaskBugFix, Language: "go", Success: true, Score: 1.0},
	)

	out := render(t, run)

	alpha := strings.Index(out, "alpha")
	baseline := strings.Index(out, "baseline")
	withSkills := strings.Index(out, "with-skills")
	require.True(t, alpha < baseline && baseline < withSkills,
		"configs must render in sorted order: %q", out)
}
