package score

import (
	"testing"

	"github.com/ppiankov/notmytype/internal/model"
)

func checksWithFailures(failed int) []model.CheckResult {
	checks := make([]model.CheckResult, len(model.CheckNames))
	for i, name := range model.CheckNames {
		checks[i] = model.CheckResult{
			Name:    name,
			Passed:  i >= failed,
			Message: "test",
		}
	}
	return checks
}

func TestAggregate_Thresholds(t *testing.T) {
	tests := []struct {
		failed  int
		want    model.ScoreTier
		message string
	}{
		{0, model.ScoreExcellent, MessageExcellent},
		{1, model.ScoreAcceptable, MessageAcceptable},
		{2, model.ScoreAcceptable, MessageAcceptable},
		{3, model.ScorePoor, MessagePoor},
		{4, model.ScorePoor, MessagePoor},
		{5, model.ScorePoor, MessagePoor},
	}

	for _, tt := range tests {
		tier, message := Aggregate(checksWithFailures(tt.failed))
		if tier != tt.want {
			t.Errorf("failed=%d: expected tier %s, got %s", tt.failed, tt.want, tier)
		}
		if message != tt.message {
			t.Errorf("failed=%d: expected message %q, got %q", tt.failed, tt.message, message)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	tier, _ := Aggregate(nil)
	if tier != model.ScoreExcellent {
		t.Errorf("Expected excellent for no checks, got %s", tier)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	checks := []model.CheckResult{
		{Name: model.CheckContrast, Passed: true},
		{Name: model.CheckReadability, Passed: false},
		{Name: model.CheckHarmony, Passed: true},
		{Name: model.CheckHierarchy, Passed: true},
		{Name: model.CheckComponentStress, Passed: false},
	}
	reversed := make([]model.CheckResult, len(checks))
	for i := range checks {
		reversed[len(checks)-1-i] = checks[i]
	}

	a, _ := Aggregate(checks)
	b, _ := Aggregate(reversed)
	if a != b {
		t.Errorf("Expected same tier regardless of order, got %s and %s", a, b)
	}
}

func TestTier_Negative(t *testing.T) {
	tier, _ := Tier(-1)
	if tier != model.ScoreExcellent {
		t.Errorf("Expected excellent for negative count, got %s", tier)
	}
}
