// Package evidence collects version-control evidence from an attempt's
// working tree.
package evidence

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

// CollectDiff returns the attempt's changes relative to the pre-attempt
// state: unstaged and staged git diffs concatenated. Any failure (no
// git, not a repository, dead working tree) degrades to an empty diff
// rather than failing the evaluation.
func CollectDiff(ctx context.Context, dir string) string {
	if dir == "" {
		return ""
	}

	unstaged := gitDiff(ctx, dir)
	staged := gitDiff(ctx, dir, "--cached")

	switch {
	case unstaged == "":
		return staged
	case staged == "":
		return unstaged
	default:
		return unstaged + "\n" + staged
	}
}

func gitDiff(ctx context.Context, dir string, extra ...string) string {
	args := append([]string{"diff"}, extra...)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		slog.Debug("git diff failed, degrading to empty diff", "dir", dir, "error", err)
		return ""
	}

	return strings.TrimSpace(string(out))
}
