package aggregate

import (
	"errors"
	"fmt"
	"math"

	"github.com/benchforge/gauntlet/internal/models"
)

// SignificanceThresholdPts is the fixed delta magnitude, in percentage
// points, above which a comparison is flagged as significant.
const SignificanceThresholdPts = 5.0

// ErrConfigNotFound is returned by Compare when a named configuration
// is absent from the run. Callers get an explicit signal rather than a
// zero-valued Comparison, so "missing config" is distinguishable from
// "both configs tied at 0%".
var ErrConfigNotFound = errors.New("configuration not found in run")

// Compare computes the baseline-vs-candidate success-rate delta for
// two named configurations of the same run.
func Compare(run *models.BenchmarkRun, baseline, candidate string) (*models.Comparison, error) {
	base, ok := run.Configs[baseline]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, baseline)
	}

	cand, ok := run.Configs[candidate]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, candidate)
	}

	delta := (cand.SuccessRate - base.SuccessRate) * 100

	return &models.Comparison{
		Baseline:      baseline,
		Candidate:     candidate,
		BaselineRate:  base.SuccessRate,
		CandidateRate: cand.SuccessRate,
		Delta:         delta,
		Significant:   math.Abs(delta) >= SignificanceThresholdPts,
	}, nil
}
