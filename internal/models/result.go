package models

import (
	"time"

	"github.com/google/uuid"
)

// AttemptResult records one evaluated attempt of one issue under one
// configuration. The classification tags are denormalized from the
// issue so each axis can be aggregated without corpus access.
// Instances are immutable once created.
type AttemptResult struct {
	IssueID    string     `json:"issue_id"`
	ConfigName string     `json:"config_name"`
	Difficulty Difficulty `json:"difficulty"`
	TaskType   TaskType   `json:"task_type"`
	Language   string     `json:"language"`

	Success bool    `json:"success"`
	Score   float64 `json:"score"`
	Details string  `json:"details"`

	// Error holds a failure message from the attempt itself (not the
	// evaluation), e.g. the agent crashed before producing output.
	Error string `json:"error,omitempty"`

	Duration time.Duration `json:"duration_ns"`

	// WorkDir points at the attempt's working tree for diagnostics.
	WorkDir string `json:"work_dir,omitempty"`
}

// PartitionStats is the aggregate tuple for one tag value of one
// classification axis (difficulty, task type, or language).
type PartitionStats struct {
	Total       int     `json:"total"`
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"success_rate"`
	AvgScore    float64 `json:"avg_score"`
}

// ConfigSummary aggregates all attempts evaluated under one
// configuration. It is mutated only by aggregate.Fold; the derived
// fields are recomputed as results arrive.
type ConfigSummary struct {
	Name    string          `json:"name"`
	Results []AttemptResult `json:"results"`

	Total         int           `json:"total"`
	Successes     int           `json:"successes"`
	SuccessRate   float64       `json:"success_rate"`
	MeanScore     float64       `json:"mean_score"`
	MinScore      float64       `json:"min_score"`
	MaxScore      float64       `json:"max_score"`
	TotalDuration time.Duration `json:"total_duration_ns"`

	ByDifficulty map[string]*PartitionStats `json:"by_difficulty"`
	ByTaskType   map[string]*PartitionStats `json:"by_task_type"`
	ByLanguage   map[string]*PartitionStats `json:"by_language"`
}

// NewConfigSummary returns an empty summary with initialized partition maps.
func NewConfigSummary(name string) *ConfigSummary {
	return &ConfigSummary{
		Name:         name,
		ByDifficulty: map[string]*PartitionStats{},
		ByTaskType:   map[string]*PartitionStats{},
		ByLanguage:   map[string]*PartitionStats{},
	}
}

// BenchmarkRun is one execution of the harness: a timestamped set of
// named configuration summaries plus corpus identity. Immutable once
// persisted.
type BenchmarkRun struct {
	RunID         string                    `json:"run_id"`
	Timestamp     time.Time                 `json:"timestamp"`
	CorpusName    string                    `json:"corpus_name"`
	CorpusVersion string                    `json:"corpus_version"`
	Duration      time.Duration             `json:"duration_ns"`
	Configs       map[string]*ConfigSummary `json:"configs"`
}

// NewBenchmarkRun returns a run stamped with a fresh ID and the current time.
func NewBenchmarkRun(corpusName, corpusVersion string) *BenchmarkRun {
	return &BenchmarkRun{
		RunID:         uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		CorpusName:    corpusName,
		CorpusVersion: corpusVersion,
		Configs:       map[string]*ConfigSummary{},
	}
}

// Comparison is a derived baseline-vs-candidate view over one run. It
// is computed on demand and never stored as part of the run.
type Comparison struct {
	Baseline      string  `json:"baseline"`
	Candidate     string  `json:"candidate"`
	BaselineRate  float64 `json:"baseline_rate"`
	CandidateRate float64 `json:"candidate_rate"`

	// Delta is the signed success-rate difference in percentage points.
	Delta       float64 `json:"delta"`
	Significant bool    `json:"significant"`
}
