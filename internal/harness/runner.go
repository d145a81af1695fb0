// Package harness evaluates batches of completed coding attempts and
// assembles the results into a benchmark run. It does not schedule or
// invoke the attempts themselves; it consumes their artifacts.
package harness

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/benchforge/gauntlet/internal/aggregate"
	"github.com/benchforge/gauntlet/internal/evaluators"
	"github.com/benchforge/gauntlet/internal/models"
)

// Attempt is one completed coding attempt awaiting evaluation.
type Attempt struct {
	Issue   *models.Issue
	Config  string
	WorkDir string

	// Output is the attempt's captured transcript.
	Output string

	// Err carries an attempt-level failure reported by the
	// orchestrator (agent crash, setup failure). Recorded on the
	// result for diagnostics; the attempt is still evaluated.
	Err string
}

// Runner evaluates attempts and folds them into per-configuration
// summaries.
type Runner struct {
	judgeCommand []string
}

// NewRunner creates a Runner. judgeCommand is the argv of the external
// judging process used by judge-backed strategies.
func NewRunner(judgeCommand []string) *Runner {
	return &Runner{judgeCommand: judgeCommand}
}

// Run evaluates every attempt and returns the assembled run.
//
// Configurations are evaluated in parallel; within one configuration,
// attempts are evaluated and folded sequentially so each summary has a
// single writer and needs no locking.
func (r *Runner) Run(ctx context.Context, corpusName, corpusVersion string, attempts []Attempt) (*models.BenchmarkRun, error) {
	started := time.Now()
	run := models.NewBenchmarkRun(corpusName, corpusVersion)

	byConfig := map[string][]Attempt{}
	for _, a := range attempts {
		byConfig[a.Config] = append(byConfig[a.Config], a)
	}

	// The config map is fully populated before any goroutine starts,
	// so the goroutines only ever touch their own summary.
	for name := range byConfig {
		run.Configs[name] = models.NewConfigSummary(name)
	}

	g, gctx := errgroup.WithContext(ctx)
	for name, batch := range byConfig {
		summary := run.Configs[name]
		g.Go(func() error {
			for _, a := range batch {
				if err := gctx.Err(); err != nil {
					return err
				}
				aggregate.Fold(summary, r.evaluate(gctx, a))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	run.Duration = time.Since(started)
	return run, nil
}

// evaluate scores a single attempt. Evaluators are total, so this
// always yields a result.
func (r *Runner) evaluate(ctx context.Context, a Attempt) models.AttemptResult {
	started := time.Now()

	ev := evaluators.ForMethod(a.Issue.Method)
	slog.Debug("evaluating attempt",
		"issue", a.Issue.ID, "config", a.Config, "strategy", ev.Name())

	verdict := ev.Evaluate(ctx, &evaluators.Context{
		Issue:        a.Issue,
		WorkDir:      a.WorkDir,
		Output:       a.Output,
		JudgeCommand: r.judgeCommand,
	})

	return models.AttemptResult{
		IssueID:    a.Issue.ID,
		ConfigName: a.Config,
		Difficulty: a.Issue.Difficulty,
		TaskType:   a.Issue.TaskType,
		Language:   a.Issue.Language,
		Success:    verdict.Success,
		Score:      verdict.Score,
		Details:    verdict.Details,
		Error:      a.Err,
		Duration:   time.Since(started),
		WorkDir:    a.WorkDir,
	}
}
