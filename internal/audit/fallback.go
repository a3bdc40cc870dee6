// internal/audit/fallback.go
package audit

import "fmt"

// scoreBand returns the qualitative phrasing interpolated into the
// synthesized insights section.
func scoreBand(score int) string {
	switch {
	case score >= 70:
		return "strong fundamentals with room for optimization"
	case score >= 50:
		return "solid foundations that need strategic refinement"
	default:
		return "significant potential for improvement through systematic optimization"
	}
}

// SynthesizeDefault produces a complete report from profile data and score
// alone. It is the quality floor of the pipeline: deterministic, never fails,
// and needs no external model. Used whenever the model call fails or its
// output cannot be decoded, and to patch individual invalid fields.
func SynthesizeDefault(profile ProfileInput, score int) Report {
	return Report{
		OverallScore: score,

		ProfileAnalysis: fmt.Sprintf(
			"Your current LinkedIn presence shows potential but needs strategic optimization to effectively reach %s. Your headline %q contains relevant keywords but could be more outcome-focused. Consider restructuring it to clearly communicate the specific value you provide to %s. Your about section would benefit from a more strategic narrative that addresses your target audience's key challenges and positions you as the solution provider.",
			profile.TargetAudience, profile.Headline, profile.TargetAudience),

		QuestionInsights: fmt.Sprintf(
			"Based on your assessment responses, several strategic opportunities emerge. Your current LinkedIn approach shows %s. The key areas requiring immediate attention align with your goal of %s.",
			scoreBand(score), profile.Goal),

		PersonalizedRecommendations: fmt.Sprintf(
			"For your role as %s, focus on creating a content strategy that demonstrates subject matter expertise while addressing %s's specific pain points. Develop a professional content calendar that balances thought leadership, industry insights, and strategic engagement. Your headline should clearly articulate the transformation you provide, while your about section should follow a problem-solution-credibility structure that resonates with decision-makers.",
			profile.Role, profile.TargetAudience),

		ActionPlan: "Week 1: Optimize your headline and about section using professional copywriting principles. Week 2: Develop a strategic content calendar with 3-4 high-value posts per week. Week 3: Implement systematic engagement with target prospects and industry leaders. Week 4: Launch refined content strategy and establish performance tracking systems to measure engagement and conversion metrics.",

		Strengths:    DefaultStrengths(),
		Improvements: DefaultImprovements(),
	}
}

// DefaultStrengths returns the generic strengths list used when the model
// provides none.
func DefaultStrengths() []string {
	return []string{
		"Clear understanding of target market and business objectives",
		"Professional background that establishes industry credibility",
		"Recognition of LinkedIn's importance for business development",
		"Commitment to improving your professional online presence",
	}
}

// DefaultImprovements returns the generic improvements list used when the
// model provides none.
func DefaultImprovements() []string {
	return []string{
		"Optimize headline for client-focused, outcome-driven messaging",
		"Restructure about section to address target audience pain points",
		"Develop consistent, value-driven content strategy",
		"Implement systematic prospect engagement and relationship building",
	}
}
