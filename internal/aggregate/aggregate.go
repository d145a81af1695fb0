// Package aggregate folds evaluated attempts into per-configuration
// summary statistics and compares configurations within a run.
package aggregate

import (
	"math"

	"github.com/benchforge/gauntlet/internal/models"
)

// Fold adds results to the summary, updating every derived statistic
// incrementally. Folding results one at a time or as a single batch
// produces identical output.
//
// Fold is not safe for concurrent use on the same summary; callers
// that fold from multiple goroutines must serialize externally.
// Distinct summaries share no state.
func Fold(s *models.ConfigSummary, results ...models.AttemptResult) {
	for _, r := range results {
		s.Results = append(s.Results, r)
		s.Total++
		if r.Success {
			s.Successes++
		}
		s.TotalDuration += r.Duration

		// Running mean keeps the update O(1) and avoids accumulating a
		// raw sum that drifts over long runs.
		n := float64(s.Total)
		s.MeanScore = (s.MeanScore*(n-1) + r.Score) / n

		if s.Total == 1 {
			s.MinScore = r.Score
			s.MaxScore = r.Score
		} else {
			s.MinScore = math.Min(s.MinScore, r.Score)
			s.MaxScore = math.Max(s.MaxScore, r.Score)
		}

		foldPartition(s.ByDifficulty, string(r.Difficulty), r)
		foldPartition(s.ByTaskType, string(r.TaskType), r)
		foldPartition(s.ByLanguage, r.Language, r)
	}

	deriveRates(s)
}

// Summarize builds a fresh summary from a result sequence. It is the
// batch form of Fold: Summarize(name, rs...) equals folding rs one at
// a time into NewConfigSummary(name).
func Summarize(name string, results ...models.AttemptResult) *models.ConfigSummary {
	s := models.NewConfigSummary(name)
	Fold(s, results...)
	return s
}

func foldPartition(parts map[string]*models.PartitionStats, tag string, r models.AttemptResult) {
	p, ok := parts[tag]
	if !ok {
		p = &models.PartitionStats{}
		parts[tag] = p
	}

	p.Total++
	if r.Success {
		p.Successes++
	}

	n := float64(p.Total)
	p.AvgScore = (p.AvgScore*(n-1) + r.Score) / n
}

// deriveRates recomputes every success rate from the counters. It is
// idempotent, so re-running it after each fold is harmless.
func deriveRates(s *models.ConfigSummary) {
	s.SuccessRate = rate(s.Successes, s.Total)

	for _, parts := range []map[string]*models.PartitionStats{s.ByDifficulty, s.ByTaskType, s.ByLanguage} {
		for _, p := range parts {
			p.SuccessRate = rate(p.Successes, p.Total)
		}
	}
}

func rate(successes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(successes) / float64(total)
}

// ScoreStdDev returns the population standard deviation of the
// summary's attempt scores, 0 for an empty summary.
func ScoreStdDev(s *models.ConfigSummary) float64 {
	if s.Total == 0 {
		return 0
	}

	variance := 0.0
	for _, r := range s.Results {
		d := r.Score - s.MeanScore
		variance += d * d
	}
	return math.Sqrt(variance / float64(s.Total))
}
