package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/benchforge/gauntlet/internal/corpus"
	"github.com/benchforge/gauntlet/internal/harness"
	"github.com/benchforge/gauntlet/internal/report"
	"github.com/benchforge/gauntlet/internal/store"
)

// runManifest describes a batch of completed attempts to evaluate.
type runManifest struct {
	Corpus       string            `yaml:"corpus"`
	Output       string            `yaml:"output,omitempty"`
	JudgeCommand []string          `yaml:"judge_command,omitempty"`
	Attempts     []manifestAttempt `yaml:"attempts"`
}

type manifestAttempt struct {
	Issue   string `yaml:"issue"`
	Config  string `yaml:"config"`
	WorkDir string `yaml:"workdir"`

	// OutputFile points at the attempt's captured transcript.
	OutputFile string `yaml:"output_file,omitempty"`
}

func newRunCommand() *cobra.Command {
	var (
		outputPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "run <manifest.yaml>",
		Short: "Evaluate a batch of completed attempts and write the run file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommandE(cmd, args[0], outputPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Run file to write (overrides the manifest's output)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the attempts that would be evaluated, then exit")

	return cmd
}

func runCommandE(cmd *cobra.Command, manifestPath, outputPath string, dryRun bool) error {
	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(manifestPath)

	corp, err := corpus.Load(resolvePath(manifest.Corpus, baseDir))
	if err != nil {
		return err
	}

	attempts, err := buildAttempts(manifest, corp, baseDir)
	if err != nil {
		return err
	}

	if dryRun {
		for _, a := range attempts {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%s, %s)\n", a.Config, a.Issue.ID, a.Issue.Method, a.WorkDir)
		}
		return nil
	}

	runner := harness.NewRunner(manifest.JudgeCommand)

	run, err := runner.Run(cmd.Context(), corp.Name, corp.Version, attempts)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = manifest.Output
	}
	if outputPath == "" {
		outputPath = "gauntlet-run.json"
	}

	if err := store.Save(resolvePath(outputPath, baseDir), run); err != nil {
		return err
	}

	report.Write(cmd.OutOrStdout(), run)
	return nil
}

func loadManifest(path string) (*runManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest runManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if manifest.Corpus == "" {
		return nil, fmt.Errorf("manifest %s is missing a corpus path", path)
	}
	if len(manifest.Attempts) == 0 {
		return nil, fmt.Errorf("manifest %s lists no attempts", path)
	}

	return &manifest, nil
}

func buildAttempts(manifest *runManifest, corp *corpus.Corpus, baseDir string) ([]harness.Attempt, error) {
	attempts := make([]harness.Attempt, 0, len(manifest.Attempts))

	for i, ma := range manifest.Attempts {
		issue, ok := corp.Issue(ma.Issue)
		if !ok {
			return nil, fmt.Errorf("attempt %d references unknown issue %q", i, ma.Issue)
		}
		if ma.Config == "" {
			return nil, fmt.Errorf("attempt %d (issue %q) is missing a config name", i, ma.Issue)
		}

		attempt := harness.Attempt{
			Issue:   issue,
			Config:  ma.Config,
			WorkDir: resolvePath(ma.WorkDir, baseDir),
		}

		if ma.OutputFile != "" {
			// A missing transcript degrades the judge evidence, it
			// doesn't block evaluation.
			data, err := os.ReadFile(resolvePath(ma.OutputFile, baseDir))
			if err != nil {
				attempt.Err = fmt.Sprintf("transcript unavailable: %v", err)
			} else {
				attempt.Output = string(data)
			}
		}

		attempts = append(attempts, attempt)
	}

	return attempts, nil
}

func resolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
