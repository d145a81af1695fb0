package models

// Verdict is the minimal output of evaluating one attempt: did it
// succeed, how much credit does it get, and why.
type Verdict struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"` // always in [0, 1]
	Details string  `json:"details"`
}
