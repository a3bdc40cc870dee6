// internal/audit/prompt.go
package audit

import (
	"fmt"
	"strings"
)

// SystemPersona is sent as the system message on every generation call.
const SystemPersona = "You are an expert LinkedIn strategist who provides detailed, personalized audits for executives and founders. Be specific, actionable, and direct in your analysis."

// BuildPrompt assembles the full instruction block for the generative model:
// persona preamble, verbatim profile dump, numbered question/answer pairs,
// the free-text challenge, the computed score, and the JSON output contract.
// The six key names in the contract are load-bearing: the parser's strict
// decode depends on the model returning exactly these keys.
func BuildPrompt(profile ProfileInput, answers []AnsweredQuestion, challenge string, score int) string {
	var parts []string

	parts = append(parts, "You are a senior LinkedIn brand strategist with 15+ years of experience helping executives optimize their personal brands. Analyze the following LinkedIn profile and assessment responses to provide professional, actionable insights.")

	parts = append(parts, "\nPROFILE INFORMATION:")
	parts = append(parts, fmt.Sprintf("Name: %s", orNotSpecified(profile.Name)))
	parts = append(parts, fmt.Sprintf("Role: %s", orNotSpecified(profile.Role)))
	parts = append(parts, fmt.Sprintf("Target Audience: %s", orNotSpecified(profile.TargetAudience)))
	parts = append(parts, fmt.Sprintf("LinkedIn Goal: %s", orNotSpecified(profile.Goal)))
	parts = append(parts, fmt.Sprintf("Current Headline: %q", profile.Headline))
	parts = append(parts, fmt.Sprintf("Current About Section: %q", profile.About))
	parts = append(parts, fmt.Sprintf("Recent Posts: %q", orNotProvided(profile.RecentPosts)))

	parts = append(parts, "\nASSESSMENT RESPONSES:")
	if len(answers) == 0 {
		parts = append(parts, "No assessment responses provided")
	} else {
		for i, answer := range answers {
			parts = append(parts, fmt.Sprintf("%d. %s\nResponse: %s", i+1, answer.Question, answer.Answer))
		}
	}

	parts = append(parts, fmt.Sprintf("\nPRIMARY CHALLENGE: %s", orNotSpecified(challenge)))
	parts = append(parts, fmt.Sprintf("\nCALCULATED SCORE: %d/100", score))

	parts = append(parts, `
Please provide a comprehensive LinkedIn audit in JSON format with the following structure. Write in a professional, consultative tone that an executive would expect from a senior strategist:

{
  "profileAnalysis": "Detailed analysis of their current headline and about section with specific improvement recommendations",
  "questionInsights": "Strategic insights based on their assessment responses, identifying key patterns and opportunities",
  "personalizedRecommendations": "Specific, actionable recommendations tailored to their role, audience, and goals",
  "actionPlan": "Clear 30-day implementation plan with weekly milestones and specific tasks",
  "strengths": ["List of 3-4 current strengths based on their profile and responses"],
  "improvements": ["List of 3-4 priority improvements they should focus on immediately"]
}`)

	parts = append(parts, `
Guidelines:
- Write in a professional, consultative tone
- Provide specific, actionable advice
- Reference their actual content when analyzing
- Focus on business impact and ROI
- Avoid overly promotional or sales-heavy language
- Make recommendations practical and implementable
- Use executive-level communication style
- Respond with the JSON object only, no surrounding text or markdown`)

	return strings.Join(parts, "\n")
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}
