// Package store persists benchmark runs as JSON documents.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/benchforge/gauntlet/internal/models"
)

// Save writes the run to path as indented JSON. The write goes through
// a temp file and a rename so a crash never leaves a torn document.
func Save(path string, run *models.BenchmarkRun) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run %s: %w", run.RunID, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return fmt.Errorf("failed to finalize run file: %w", err)
	}

	return nil
}

// Load reads a run previously written by Save.
func Load(path string) (*models.BenchmarkRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	var run models.BenchmarkRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to parse run file %s: %w", path, err)
	}

	return &run, nil
}
