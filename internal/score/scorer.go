package score

import "github.com/ppiankov/notmytype/internal/model"

// Verdict messages, one per tier
const (
	MessageExcellent  = "These fonts have chemistry ✨"
	MessageAcceptable = "Good pairing with minor considerations"
	MessagePoor       = "Not feeling the spark here"
)

// maxAcceptableFailures is the most failed checks a pairing can have and still be acceptable
const maxAcceptableFailures = 2

// Aggregate reduces check results to a tier and verdict message.
// Every failed check counts the same; there is no weighting.
func Aggregate(checks []model.CheckResult) (model.ScoreTier, string) {
	failed := 0
	for _, c := range checks {
		if !c.Passed {
			failed++
		}
	}
	return Tier(failed)
}

// Tier maps a failed-check count to a tier and message
func Tier(failed int) (model.ScoreTier, string) {
	switch {
	case failed <= 0:
		return model.ScoreExcellent, MessageExcellent
	case failed <= maxAcceptableFailures:
		return model.ScoreAcceptable, MessageAcceptable
	default:
		return model.ScorePoor, MessagePoor
	}
}
