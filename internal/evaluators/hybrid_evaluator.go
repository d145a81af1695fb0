package evaluators

import (
	"context"
	"fmt"

	"github.com/benchforge/gauntlet/internal/models"
)

// Hybrid weights. The automated check carries more signal than the
// judge's opinion.
const (
	hybridCheckWeight = 0.6
	hybridJudgeWeight = 0.4
)

// hybridEvaluator runs the automated check and then the judged
// assessment, combining their scores with fixed weights. The two
// sub-evaluations run sequentially, never concurrently, so at most one
// external process is alive at a time.
type hybridEvaluator struct {
	check Evaluator
	judge Evaluator
}

// NewHybridEvaluator creates a [hybridEvaluator] over the standard
// check and judge strategies.
func NewHybridEvaluator() *hybridEvaluator {
	return &hybridEvaluator{
		check: NewCheckEvaluator(),
		judge: NewJudgeEvaluator(),
	}
}

func (he *hybridEvaluator) Name() string              { return "hybrid" }
func (he *hybridEvaluator) Method() models.EvalMethod { return models.MethodHybrid }

func (he *hybridEvaluator) Evaluate(ctx context.Context, attempt *Context) *models.Verdict {
	checkVerdict := he.check.Evaluate(ctx, attempt)
	judgeVerdict := he.judge.Evaluate(ctx, attempt)

	combined := hybridCheckWeight*checkVerdict.Score + hybridJudgeWeight*judgeVerdict.Score

	return &models.Verdict{
		Success: combined >= AcceptanceThreshold,
		Score:   combined,
		Details: fmt.Sprintf("check (%.2f): %s; judge (%.2f): %s",
			checkVerdict.Score, checkVerdict.Details,
			judgeVerdict.Score, judgeVerdict.Details),
	}
}
