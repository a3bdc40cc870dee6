// internal/audit/validate.go
package audit

import "strings"

// patchReport enforces the report invariants after parsing: every prose
// section non-empty and at least minProseLength characters, both lists with
// 1 to maxListItems entries. Violating fields are replaced with the
// corresponding synthesized default; valid fields pass through untouched.
func patchReport(report Report, profile ProfileInput, score int) Report {
	defaults := SynthesizeDefault(profile, score)

	report.OverallScore = score
	report.ProfileAnalysis = patchProse(report.ProfileAnalysis, defaults.ProfileAnalysis)
	report.QuestionInsights = patchProse(report.QuestionInsights, defaults.QuestionInsights)
	report.PersonalizedRecommendations = patchProse(report.PersonalizedRecommendations, defaults.PersonalizedRecommendations)
	report.ActionPlan = patchProse(report.ActionPlan, defaults.ActionPlan)
	report.Strengths = patchList(report.Strengths, defaults.Strengths)
	report.Improvements = patchList(report.Improvements, defaults.Improvements)

	return report
}

func patchProse(value, fallback string) string {
	if len(strings.TrimSpace(value)) < minProseLength {
		return fallback
	}
	return value
}

func patchList(items, defaults []string) []string {
	out := make([]string, 0, maxListItems)
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
		if len(out) == maxListItems {
			break
		}
	}

	if len(out) == 0 {
		return defaults
	}
	return out
}
