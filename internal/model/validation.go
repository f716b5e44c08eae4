package model

import (
	"encoding/json"
	"fmt"
)

// CheckName identifies one compatibility rule
type CheckName string

const (
	CheckContrast        CheckName = "contrast"
	CheckReadability     CheckName = "readability"
	CheckHarmony         CheckName = "harmony"
	CheckHierarchy       CheckName = "hierarchy"
	CheckComponentStress CheckName = "componentStress"
)

// CheckNames lists every check in evaluation order
var CheckNames = []CheckName{
	CheckContrast,
	CheckReadability,
	CheckHarmony,
	CheckHierarchy,
	CheckComponentStress,
}

// CheckResult is the outcome of one compatibility rule
type CheckResult struct {
	Name    CheckName `json:"-"`
	Passed  bool      `json:"passed"`
	Message string    `json:"message"`
}

// ScoreTier is the aggregated verdict for a pairing
type ScoreTier string

const (
	ScoreExcellent  ScoreTier = "excellent"
	ScoreAcceptable ScoreTier = "acceptable"
	ScorePoor       ScoreTier = "poor"
)

// ValidationResult aggregates the five checks for one heading/body pair.
// It is never mutated after the validator returns it.
type ValidationResult struct {
	HeadingFont     string
	BodyFont        string
	HeadingCategory FontCategory
	BodyCategory    FontCategory
	Score           ScoreTier
	Checks          []CheckResult // Always in CheckNames order
	Message         string
}

// Check returns the result of the named check
func (r ValidationResult) Check(name CheckName) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return CheckResult{}, false
}

// FailedCount returns how many checks did not pass
func (r ValidationResult) FailedCount() int {
	failed := 0
	for _, c := range r.Checks {
		if !c.Passed {
			failed++
		}
	}
	return failed
}

// validationJSON is the wire shape: checks keyed by name
type validationJSON struct {
	HeadingFont     string                    `json:"headingFont"`
	BodyFont        string                    `json:"bodyFont"`
	HeadingCategory FontCategory              `json:"headingCategory"`
	BodyCategory    FontCategory              `json:"bodyCategory"`
	Score           ScoreTier                 `json:"score"`
	Checks          map[CheckName]CheckResult `json:"checks"`
	Message         string                    `json:"message"`
}

// MarshalJSON encodes checks as an object keyed by check name
func (r ValidationResult) MarshalJSON() ([]byte, error) {
	out := validationJSON{
		HeadingFont:     r.HeadingFont,
		BodyFont:        r.BodyFont,
		HeadingCategory: r.HeadingCategory,
		BodyCategory:    r.BodyCategory,
		Score:           r.Score,
		Checks:          make(map[CheckName]CheckResult, len(r.Checks)),
		Message:         r.Message,
	}
	for _, c := range r.Checks {
		out.Checks[c.Name] = c
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores checks into CheckNames order
func (r *ValidationResult) UnmarshalJSON(data []byte) error {
	var in validationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	checks := make([]CheckResult, 0, len(in.Checks))
	for _, name := range CheckNames {
		c, ok := in.Checks[name]
		if !ok {
			return fmt.Errorf("missing check %q", name)
		}
		c.Name = name
		checks = append(checks, c)
	}

	*r = ValidationResult{
		HeadingFont:     in.HeadingFont,
		BodyFont:        in.BodyFont,
		HeadingCategory: in.HeadingCategory,
		BodyCategory:    in.BodyCategory,
		Score:           in.Score,
		Checks:          checks,
		Message:         in.Message,
	}
	return nil
}
