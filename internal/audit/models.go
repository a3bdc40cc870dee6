// internal/audit/models.go
package audit

// ProfileInput is the user-supplied profile data. Immutable once submitted.
// JSON tags match the questionnaire front-end's field names.
type ProfileInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"whatDoYouDo"`
	TargetAudience string `json:"targetAudience"`
	Goal           string `json:"mainLinkedInGoal"`
	Headline       string `json:"headline"`
	About          string `json:"aboutSection"`
	RecentPosts    string `json:"recentPosts,omitempty"`
}

// AnsweredQuestion pairs a catalog question with the option the user chose
// and the canned feedback shown for that option.
type AnsweredQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Feedback string `json:"feedback"`
}

// Request is the boundary payload for one completed questionnaire.
type Request struct {
	Profile   ProfileInput       `json:"profileData"`
	Answers   []AnsweredQuestion `json:"answers"`
	Challenge string             `json:"openTextAnswer"`
}

// Report is the structured audit output. Created once per submission and
// never mutated afterwards.
type Report struct {
	OverallScore                int      `json:"overallScore"`
	ProfileAnalysis             string   `json:"profileAnalysis"`
	QuestionInsights            string   `json:"questionInsights"`
	PersonalizedRecommendations string   `json:"personalizedRecommendations"`
	ActionPlan                  string   `json:"actionPlan"`
	Strengths                   []string `json:"strengths"`
	Improvements                []string `json:"improvements"`
}

// Result is what the pipeline hands back to the UI: the report plus the
// submitter's identity for display.
type Result struct {
	Report
	Name  string `json:"name"`
	Email string `json:"email"`
}

const (
	// minProseLength is the floor below which a prose section is considered
	// implausible and replaced with synthesized content.
	minProseLength = 50

	// maxListItems caps the strengths/improvements lists.
	maxListItems = 4
)
