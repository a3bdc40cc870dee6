// internal/audit/scoring.go
package audit

import "github.com/beigestudio/linkedin-lead-lab-report/internal/catalog"

const baseScore = 50

// ComputeScore maps answered questions to a score in [0,100]. Each answer
// contributes its tier delta (+8 strong, +4 moderate, +1 otherwise) on top
// of the base 50. An empty answer list yields exactly 50.
func ComputeScore(answers []AnsweredQuestion) int {
	score := baseScore

	for _, answer := range answers {
		score += catalog.TierOf(answer.Answer).Delta()
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
