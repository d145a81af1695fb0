package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benchforge/gauntlet/internal/aggregate"
	"github.com/benchforge/gauntlet/internal/models"
	"github.com/benchforge/gauntlet/internal/store"
)

func writeRunFile(t *testing.T, rates map[string]float64) string {
	t.Helper()

	run := models.NewBenchmarkRun("corpus", "1.0")
	for name, rate := range rates {
		s := models.NewConfigSummary(name)
		s.SuccessRate = rate
		run.Configs[name] = s
	}

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, store.Save(path, run))
	return path
}

func TestCompareCommand(t *testing.T) {
	path := writeRunFile(t, map[string]float64{"baseline": 0.54, "candidate": 0.73})

	out, err := executeCommand(t, "compare", path, "baseline", "candidate")
	require.NoError(t, err)

	require.Contains(t, out, "+19.0 pp")
	require.Contains(t, out, "significant")
}

func TestCompareCommand_InsignificantDelta(t *testing.T) {
	path := writeRunFile(t, map[string]float64{"baseline": 0.54, "candidate": 0.56})

	out, err := executeCommand(t, "compare", path, "baseline", "candidate")
	require.NoError(t, err)

	require.Contains(t, out, "+2.0 pp")
	require.Contains(t, out, "not significant")
}

func TestCompareCommand_MissingConfig(t *testing.T) {
	path := writeRunFile(t, map[string]float64{"baseline": 0.54})

	_, err := executeCommand(t, "compare", path, "baseline", "missing")
	require.ErrorIs(t, err, aggregate.ErrConfigNotFound)
}

func TestReportCommand(t *testing.T) {
	path := writeRunFile(t, map[string]float64{"baseline": 0.5, "candidate": 0.8})

	out, err := executeCommand(t, "report", path)
	require.NoError(t, err)
	require.Contains(t, out, "SUMMARY")
	require.Contains(t, out, "baseline")
	require.Contains(t, out, "candidate")
}
