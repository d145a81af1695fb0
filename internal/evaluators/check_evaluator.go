package evaluators

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/benchforge/gauntlet/internal/models"
)

// defaultCheckTimeout bounds the automated check command.
const defaultCheckTimeout = 5 * time.Minute

// defaultCheckCommands maps a lowercase language tag to the unit-test
// invocation used when an issue supplies no check command of its own.
var defaultCheckCommands = map[string]string{
	"go":         "go test ./...",
	"python":     "python -m pytest",
	"javascript": "npm test",
	"typescript": "npm test",
	"rust":       "cargo test",
	"java":       "mvn -q test",
}

type checkEvaluatorArgs struct {
	Command string `mapstructure:"check_command"`
}

// checkEvaluator runs the issue's check command (or the per-language
// default) inside the attempt's working tree. Exit 0 is full credit;
// a nonzero exit earns best-effort partial credit from test-output
// markers.
type checkEvaluator struct {
	timeout time.Duration
}

// NewCheckEvaluator creates a [checkEvaluator] with the default budget.
func NewCheckEvaluator() *checkEvaluator {
	return &checkEvaluator{timeout: defaultCheckTimeout}
}

func (ce *checkEvaluator) Name() string              { return "automated-check" }
func (ce *checkEvaluator) Method() models.EvalMethod { return models.MethodCheck }

func (ce *checkEvaluator) Evaluate(ctx context.Context, attempt *Context) *models.Verdict {
	var args checkEvaluatorArgs
	if err := mapstructure.Decode(attempt.Issue.Params, &args); err != nil {
		return &models.Verdict{Details: fmt.Sprintf("invalid check parameters: %v", err)}
	}

	command := args.Command
	if command == "" {
		command = defaultCheckCommands[strings.ToLower(attempt.Issue.Language)]
	}

	// Commands are split on whitespace; there is no shell involved.
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return &models.Verdict{
			Details: fmt.Sprintf("no check command configured and no default for language %q", attempt.Issue.Language),
		}
	}

	tctx, cancel := context.WithTimeout(ctx, ce.timeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, argv[0], argv[1:]...)
	cmd.Dir = attempt.WorkDir
	cmd.WaitDelay = processWaitDelay

	output, err := cmd.CombinedOutput()
	if err == nil {
		return &models.Verdict{
			Success: true,
			Score:   1.0,
			Details: fmt.Sprintf("check command passed: %s", command),
		}
	}

	if errors.Is(tctx.Err(), context.DeadlineExceeded) {
		return &models.Verdict{
			Details: fmt.Sprintf("check command timed out after %s: %s", ce.timeout, command),
		}
	}

	passed, failed, found := ScanTestOutput(attempt.Issue.Language, string(output))
	if !found {
		return &models.Verdict{
			Details: fmt.Sprintf("check command failed (%v) with no recognizable test markers", err),
		}
	}

	// The exit code is the binary signal here: a nonzero exit never
	// counts as success, however high the partial score.
	return &models.Verdict{
		Score:   clamp01(float64(passed) / float64(passed+failed)),
		Details: fmt.Sprintf("check command failed: %d passed, %d failed", passed, failed),
	}
}
