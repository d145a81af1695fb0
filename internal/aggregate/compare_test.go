package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benchforge/gauntlet/internal/models"
)

func runWithRates(rates map[string]float64) *models.BenchmarkRun {
	run := models.NewBenchmarkRun("corpus", "1.0.0")
	for name, rate := range rates {
		s := models.NewConfigSummary(name)
		s.SuccessRate = rate
		run.Configs[name] = s
	}
	return run
}

func TestCompare_SignificantImprovement(t *testing.T) {
	run := runWithRates(map[string]float64{"baseline": 0.54, "candidate": 0.73})

	cmp, err := Compare(run, "baseline", "candidate")
	require.NoError(t, err)

	require.Equal(t, "baseline", cmp.Baseline)
	require.Equal(t, "candidate", cmp.Candidate)
	require.InDelta(t, 0.54, cmp.BaselineRate, 1e-9)
	require.InDelta(t, 0.73, cmp.CandidateRate, 1e-9)
	require.InDelta(t, 19.0, cmp.Delta, 1e-9)
	require.True(t, cmp.Significant)
}

func TestCompare_InsignificantDelta(t *testing.T) {
	run := runWithRates(map[string]float64{"baseline": 0.54, "candidate": 0.56})

	cmp, err := Compare(run, "baseline", "candidate")
	require.NoError(t, err)

	require.InDelta(t, 2.0, cmp.Delta, 1e-9)
	require.False(t, cmp.Significant)
}

func TestCompare_SignificantRegression(t *testing.T) {
	run := runWithRates(map[string]float64{"baseline": 0.80, "candidate": 0.60})

	cmp, err := Compare(run, "baseline", "candidate")
	require.NoError(t, err)

	require.InDelta(t, -20.0, cmp.Delta, 1e-9)
	require.True(t, cmp.Significant)
}

func TestCompare_MissingConfig(t *testing.T) {
	run := runWithRates(map[string]float64{"baseline": 0.54})

	t.Run("missing candidate", func(t *testing.T) {
		cmp, err := Compare(run, "baseline", "missing")
		require.ErrorIs(t, err, ErrConfigNotFound)
		require.ErrorContains(t, err, "missing")
		require.Nil(t, cmp)
	})

	t.Run("missing baseline", func(t *testing.T) {
		cmp, err := Compare(run, "absent", "baseline")
		require.ErrorIs(t, err, ErrConfigNotFound)
		require.Nil(t, cmp)
	})
}

func TestCompare_ZeroRatesAreComparable(t *testing.T) {
	// Two configs tied at 0% is a real comparison, distinguishable
	// from a missing config.
	run := runWithRates(map[string]float64{"baseline": 0.0, "candidate": 0.0})

	cmp, err := Compare(run, "baseline", "candidate")
	require.NoError(t, err)
	require.Zero(t, cmp.Delta)
	require.False(t, cmp.Significant)
}
