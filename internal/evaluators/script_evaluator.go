package evaluators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/benchforge/gauntlet/internal/models"
)

// defaultScriptTimeout bounds the custom check script.
const defaultScriptTimeout = 2 * time.Minute

type scriptEvaluatorArgs struct {
	Script string `mapstructure:"script"`
}

// scriptEvaluator writes the issue's script body to a temporary file
// inside the attempt's working tree, runs it, and removes the file on
// every exit path. Exit 0 is full credit, anything else is zero.
type scriptEvaluator struct {
	timeout time.Duration
}

// NewScriptEvaluator creates a [scriptEvaluator] with the default budget.
func NewScriptEvaluator() *scriptEvaluator {
	return &scriptEvaluator{timeout: defaultScriptTimeout}
}

func (se *scriptEvaluator) Name() string              { return "custom-script" }
func (se *scriptEvaluator) Method() models.EvalMethod { return models.MethodScript }

func (se *scriptEvaluator) Evaluate(ctx context.Context, attempt *Context) *models.Verdict {
	var args scriptEvaluatorArgs
	if err := mapstructure.Decode(attempt.Issue.Params, &args); err != nil {
		return &models.Verdict{Details: fmt.Sprintf("invalid script parameters: %v", err)}
	}

	if strings.TrimSpace(args.Script) == "" {
		return &models.Verdict{
			Details: fmt.Sprintf("issue %q declares script evaluation but has no script body", attempt.Issue.ID),
		}
	}

	scriptPath, err := se.writeScript(attempt.WorkDir, args.Script)
	if err != nil {
		return &models.Verdict{Details: fmt.Sprintf("failed to write check script: %v", err)}
	}

	defer os.Remove(scriptPath) //nolint:errcheck

	tctx, cancel := context.WithTimeout(ctx, se.timeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, scriptPath)
	cmd.Dir = attempt.WorkDir
	cmd.WaitDelay = processWaitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if errors.Is(tctx.Err(), context.DeadlineExceeded) {
		return &models.Verdict{
			Details: fmt.Sprintf("check script timed out after %s", se.timeout),
		}
	}

	if runErr != nil {
		details := strings.TrimSpace(stderr.String())
		if details == "" {
			details = fmt.Sprintf("check script exited with error: %v", runErr)
		}
		return &models.Verdict{Details: details}
	}

	details := "check script passed"
	if notes := strings.TrimSpace(stdout.String()); notes != "" {
		details = notes
	}

	return &models.Verdict{Success: true, Score: 1.0, Details: details}
}

// writeScript materializes the script body as an executable temp file
// inside the working tree, prepending a shell shebang when the body
// has none so the file can be exec'd directly.
func (se *scriptEvaluator) writeScript(workDir, body string) (string, error) {
	f, err := os.CreateTemp(workDir, "gauntlet-check-*.sh")
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(body, "#!") {
		body = "#!/bin/sh\n" + body
	}

	if _, err := f.WriteString(body); err != nil {
		f.Close()           //nolint:errcheck
		os.Remove(f.Name()) //nolint:errcheck
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name()) //nolint:errcheck
		return "", err
	}

	if err := os.Chmod(f.Name(), 0o700); err != nil {
		os.Remove(f.Name()) //nolint:errcheck
		return "", err
	}

	return f.Name(), nil
}
