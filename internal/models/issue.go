package models

// Difficulty is the declared difficulty tier of an issue.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// TaskType classifies what kind of change an issue asks for.
type TaskType string

const (
	TaskBugFix        TaskType = "bug_fix"
	TaskFeature       TaskType = "feature"
	TaskRefactor      TaskType = "refactor"
	TaskTest          TaskType = "test"
	TaskDocumentation TaskType = "documentation"
)

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskBugFix, TaskFeature, TaskRefactor, TaskTest, TaskDocumentation:
		return true
	}
	return false
}

// EvalMethod selects which evaluation strategy scores an attempt.
type EvalMethod string

const (
	MethodCheck  EvalMethod = "check"
	MethodJudge  EvalMethod = "judge"
	MethodScript EvalMethod = "script"
	MethodHybrid EvalMethod = "hybrid"
)

// Issue is one catalogued coding problem. The engine consumes issues
// read-only; they are parsed from the corpus file and never mutated.
type Issue struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	TaskType    TaskType   `json:"task_type" yaml:"task_type"`
	Language    string     `json:"language" yaml:"language"`
	Method      EvalMethod `json:"eval_method" yaml:"eval_method"`

	// Params carries method-specific settings (check_command,
	// success_criteria, script, ...). Each evaluator decodes the keys
	// it understands and ignores the rest.
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}
