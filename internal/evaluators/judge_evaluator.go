package evaluators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/benchforge/gauntlet/internal/evidence"
	"github.com/benchforge/gauntlet/internal/models"
)

const (
	// defaultJudgeTimeout bounds the external judging process.
	defaultJudgeTimeout = 2 * time.Minute

	// maxDiffChars and maxTranscriptChars cap the evidence embedded in
	// the judge prompt.
	maxDiffChars       = 16_000
	maxTranscriptChars = 8_000

	// maxFallbackDetails caps the raw response copied into the verdict
	// when the judge emitted no structured lines.
	maxFallbackDetails = 400
)

type judgeEvaluatorArgs struct {
	SuccessCriteria string `mapstructure:"success_criteria"`
}

// judgeEvaluator builds a fixed-shape prompt from the issue, the
// attempt's diff and its transcript, pipes it to an external judging
// process, and parses the SCORE/REASON lines out of the response.
type judgeEvaluator struct {
	timeout time.Duration
}

// NewJudgeEvaluator creates a [judgeEvaluator] with the default budget.
func NewJudgeEvaluator() *judgeEvaluator {
	return &judgeEvaluator{timeout: defaultJudgeTimeout}
}

func (je *judgeEvaluator) Name() string              { return "judged-assessment" }
func (je *judgeEvaluator) Method() models.EvalMethod { return models.MethodJudge }

func (je *judgeEvaluator) Evaluate(ctx context.Context, attempt *Context) *models.Verdict {
	var args judgeEvaluatorArgs
	if err := mapstructure.Decode(attempt.Issue.Params, &args); err != nil {
		return &models.Verdict{Details: fmt.Sprintf("invalid judge parameters: %v", err)}
	}

	if len(attempt.JudgeCommand) == 0 {
		return &models.Verdict{Details: "no judge command configured"}
	}

	diff := attempt.Diff
	if diff == "" {
		diff = evidence.CollectDiff(ctx, attempt.WorkDir)
	}

	prompt := buildJudgePrompt(attempt.Issue, args.SuccessCriteria, diff, attempt.Output)

	tctx, cancel := context.WithTimeout(ctx, je.timeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, attempt.JudgeCommand[0], attempt.JudgeCommand[1:]...)
	cmd.Dir = attempt.WorkDir
	cmd.WaitDelay = processWaitDelay
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(tctx.Err(), context.DeadlineExceeded) {
			return &models.Verdict{
				Details: fmt.Sprintf("judge process timed out after %s", je.timeout),
			}
		}

		details := fmt.Sprintf("judge process failed: %v", err)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			details = fmt.Sprintf("%s; stderr: %s", details, msg)
		}
		return &models.Verdict{Details: details}
	}

	response := stdout.String()

	score, reason, ok := parseJudgeResponse(response)
	if !ok {
		score, reason = fallbackJudgeScore(response)
	}
	if reason == "" {
		reason = fmt.Sprintf("judge scored %.2f without a stated reason", score)
	}

	score = clamp01(score)

	return &models.Verdict{
		Success: score >= AcceptanceThreshold,
		Score:   score,
		Details: reason,
	}
}

// buildJudgePrompt assembles the fixed-shape grading prompt. When the
// issue declares no success criteria, a generated fallback describing
// the issue is used instead.
func buildJudgePrompt(issue *models.Issue, criteria, diff, transcript string) string {
	if strings.TrimSpace(criteria) == "" {
		criteria = fmt.Sprintf(
			"The change should resolve the %s issue %q in a way a careful reviewer would accept.",
			issue.TaskType, issue.Title)
	}

	var sb strings.Builder
	sb.WriteString("You are grading an automated coding attempt.\n\n")
	sb.WriteString("## Issue\n")
	sb.WriteString(fmt.Sprintf("%s (%s, %s, %s)\n", issue.Title, issue.Difficulty, issue.TaskType, issue.Language))
	sb.WriteString(issue.Description)
	sb.WriteString("\n\n## Success criteria\n")
	sb.WriteString(criteria)
	sb.WriteString("\n\n## Attempt diff\n```\n")
	sb.WriteString(truncate(diff, maxDiffChars))
	sb.WriteString("\n```\n\n## Attempt output\n```\n")
	sb.WriteString(truncate(transcript, maxTranscriptChars))
	sb.WriteString("\n```\n\n")
	sb.WriteString("Respond with a line `SCORE: <0-100>` and a line `REASON: <one sentence>`.\n")
	return sb.String()
}

// parseJudgeResponse extracts the SCORE and REASON lines. A score
// above 1.0 is treated as a 0-100 percentage and divided by 100.
// ok is false when no parseable SCORE line exists.
func parseJudgeResponse(response string) (score float64, reason string, ok bool) {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)

		if rest, found := strings.CutPrefix(line, "SCORE:"); found && !ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
			if err != nil {
				continue
			}
			if v > 1.0 {
				v /= 100
			}
			score = v
			ok = true
		}

		if rest, found := strings.CutPrefix(line, "REASON:"); found && reason == "" {
			reason = strings.TrimSpace(rest)
		}
	}

	return score, reason, ok
}

// fallbackJudgeScore derives a crude score from an unstructured judge
// response so a judge that skips the SCORE line still produces a
// verdict.
func fallbackJudgeScore(response string) (float64, string) {
	lower := strings.ToLower(response)

	score := 0.0
	switch {
	case strings.Contains(lower, "success") || strings.Contains(lower, "correct"):
		score = 0.8
	case strings.Contains(lower, "partial"):
		score = 0.5
	}

	return score, truncate(strings.TrimSpace(response), maxFallbackDetails)
}
