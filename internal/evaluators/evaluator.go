// Package evaluators contains the interchangeable strategies that turn
// an attempt's raw evidence (command output, diffs, transcripts) into a
// success/score verdict.
package evaluators

import (
	"context"
	"time"

	"github.com/benchforge/gauntlet/internal/models"
)

// AcceptanceThreshold is the score at or above which an attempt counts
// as successful when a strategy has no binary pass/fail signal of its
// own (such as a process exit code).
const AcceptanceThreshold = 0.70

// processWaitDelay is the grace period after a deadline kill before
// abandoning the process's output pipes. Without it, a killed shell
// whose child still holds stdout open would hang the evaluation.
const processWaitDelay = 2 * time.Second

// Evaluator is the interface for all scoring strategies.
//
// Evaluate is total: configuration mistakes, spawn failures, timeouts
// and unparseable responses all map to a Verdict with an explanatory
// detail. No fault escapes to the caller.
type Evaluator interface {
	// Name returns the strategy name used in logs and rationales.
	Name() string

	// Method returns the evaluation method this strategy serves.
	Method() models.EvalMethod

	// Evaluate scores one attempt's evidence.
	Evaluate(ctx context.Context, attempt *Context) *models.Verdict
}

// Context carries the evidence for one attempt.
type Context struct {
	Issue *models.Issue

	// WorkDir is the attempt's working tree. Check commands and custom
	// scripts run inside it.
	WorkDir string

	// Output is the attempt's own captured transcript, used as judge
	// evidence.
	Output string

	// Diff is the attempt's change set relative to the pre-attempt
	// state. When empty, judge-backed strategies collect it from
	// version control on demand.
	Diff string

	// JudgeCommand is the argv of the external judging process. The
	// constructed prompt is piped to its stdin.
	JudgeCommand []string
}

// ForMethod maps an evaluation method to its strategy. It is total:
// unknown methods fall back to the judged assessment, so a corpus typo
// degrades one issue's scoring rather than aborting the run.
func ForMethod(method models.EvalMethod) Evaluator {
	switch method {
	case models.MethodCheck:
		return NewCheckEvaluator()
	case models.MethodScript:
		return NewScriptEvaluator()
	case models.MethodHybrid:
		return NewHybridEvaluator()
	case models.MethodJudge:
		return NewJudgeEvaluator()
	default:
		return NewJudgeEvaluator()
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "\n... [truncated]"
}
