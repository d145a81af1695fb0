package evaluators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benchforge/gauntlet/internal/models"
)

// stubEvaluator returns a fixed verdict, for exercising the hybrid
// combination rule without spawning processes.
type stubEvaluator struct {
	method  models.EvalMethod
	verdict models.Verdict
	calls   int
}

func (s *stubEvaluator) Name() string              { return "stub" }
func (s *stubEvaluator) Method() models.EvalMethod { return s.method }

func (s *stubEvaluator) Evaluate(context.Context, *Context) *models.Verdict {
	s.calls++
	v := s.verdict
	return &v
}

func hybridWith(checkScore, judgeScore float64) (*hybridEvaluator, *stubEvaluator, *stubEvaluator) {
	check := &stubEvaluator{method: models.MethodCheck, verdict: models.Verdict{Score: checkScore, Details: "check details"}}
	judge := &stubEvaluator{method: models.MethodJudge, verdict: models.Verdict{Score: judgeScore, Details: "judge details"}}
	return &hybridEvaluator{check: check, judge: judge}, check, judge
}

func TestHybridEvaluator_CombinesWithFixedWeights(t *testing.T) {
	tests := []struct {
		name       string
		checkScore float64
		judgeScore float64
		success    bool
	}{
		{"both perfect", 1.0, 1.0, true},
		{"strong check weak judge", 1.0, 0.5, true},
		{"weak check strong judge", 0.25, 1.0, false},
		{"both middling", 0.5, 0.5, false},
		{"both zero", 0.0, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, check, judge := hybridWith(tt.checkScore, tt.judgeScore)

			verdict := h.Evaluate(context.Background(), &Context{})

			require.InDelta(t, 0.6*tt.checkScore+0.4*tt.judgeScore, verdict.Score, 1e-9)
			require.Equal(t, tt.success, verdict.Success)
			require.Equal(t, 1, check.calls)
			require.Equal(t, 1, judge.calls)
		})
	}
}

func TestHybridEvaluator_DetailsTraceBothComponents(t *testing.T) {
	h, _, _ := hybridWith(0.75, 0.5)

	verdict := h.Evaluate(context.Background(), &Context{})

	require.Contains(t, verdict.Details, "check (0.75): check details")
	require.Contains(t, verdict.Details, "judge (0.50): judge details")
}

func TestHybridEvaluator_UsesRealSubEvaluators(t *testing.T) {
	h := NewHybridEvaluator()
	require.Equal(t, models.MethodHybrid, h.Method())
	require.Equal(t, models.MethodCheck, h.check.Method())
	require.Equal(t, models.MethodJudge, h.judge.Method())
}
