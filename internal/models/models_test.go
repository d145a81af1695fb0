package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		require.True(t, d.Valid(), d)
	}
	require.False(t, Difficulty("impossible").Valid())
	require.False(t, Difficulty("").Valid())
}

func TestTaskTypeValid(t *testing.T) {
	for _, tt := range []TaskType{TaskBugFix, TaskFeature, TaskRefactor, TaskTest, TaskDocumentation} {
		require.True(t, tt.Valid(), tt)
	}
	require.False(t, TaskType("yak_shave").Valid())
}

func TestNewConfigSummary(t *testing.T) {
	s := NewConfigSummary("baseline")
	require.Equal(t, "baseline", s.Name)
	require.NotNil(t, s.ByDifficulty)
	require.NotNil(t, s.ByTaskType)
	require.NotNil(t, s.ByLanguage)
	require.Zero(t, s.Total)
}

func TestNewBenchmarkRun(t *testing.T) {
	run := NewBenchmarkRun("corpus", "1.0")
	require.NotEmpty(t, run.RunID)
	require.False(t, run.Timestamp.IsZero())
	require.NotNil(t, run.Configs)

	other := NewBenchmarkRun("corpus", "1.0")
	require.NotEqual(t, run.RunID, other.RunID)
}
