// Package corpus loads and validates the declarative issue corpus.
package corpus

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benchforge/gauntlet/internal/models"
)

// Corpus is a named, versioned catalogue of issues.
type Corpus struct {
	Name    string         `yaml:"name"`
	Version string         `yaml:"version"`
	Issues  []models.Issue `yaml:"issues"`
}

// Load reads and validates a corpus YAML file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus %s: %w", path, err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid corpus %s: %w", path, err)
	}

	return &c, nil
}

// Issue returns the issue with the given ID, if present.
func (c *Corpus) Issue(id string) (*models.Issue, bool) {
	for i := range c.Issues {
		if c.Issues[i].ID == id {
			return &c.Issues[i], true
		}
	}
	return nil, false
}

func (c *Corpus) validate() error {
	if c.Name == "" {
		return errors.New("corpus is missing a name")
	}

	seen := make(map[string]bool, len(c.Issues))
	for i := range c.Issues {
		issue := &c.Issues[i]

		if issue.ID == "" {
			return fmt.Errorf("issue at index %d is missing an id", i)
		}
		if seen[issue.ID] {
			return fmt.Errorf("duplicate issue id %q", issue.ID)
		}
		seen[issue.ID] = true

		if !issue.Difficulty.Valid() {
			return fmt.Errorf("issue %q: unknown difficulty %q", issue.ID, issue.Difficulty)
		}
		if !issue.TaskType.Valid() {
			return fmt.Errorf("issue %q: unknown task type %q", issue.ID, issue.TaskType)
		}
	}

	return nil
}
