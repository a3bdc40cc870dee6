// internal/email/renderer.go
package email

import (
	"html/template"
	"strings"

	"github.com/beigestudio/linkedin-lead-lab-report/internal/audit"
)

// SchedulingLink is the static call-to-action target in every report email.
const SchedulingLink = "https://calendar.app.google/SWZoyjMHZZALNwqz7"

// ScoreColor returns the badge color for a score band.
func ScoreColor(score int) string {
	if score >= 80 {
		return "#059669"
	}
	if score >= 60 {
		return "#d97706"
	}
	return "#ea580c"
}

// ScoreDescription returns the qualitative label for a score band.
func ScoreDescription(score int) string {
	if score >= 80 {
		return "Excellent Foundation"
	}
	if score >= 60 {
		return "Good Potential"
	}
	return "Significant Opportunity"
}

type emailData struct {
	Name             string
	Report           audit.Report
	ScoreColor       template.CSS
	ScoreDescription string
	SchedulingLink   string
}

// RenderHTML produces the complete, self-contained report email document.
// All styles are inlined; no network access, no side effects.
func RenderHTML(profile audit.ProfileInput, report audit.Report) string {
	var out strings.Builder
	_ = emailTemplate.Execute(&out, emailData{
		Name:             profile.Name,
		Report:           report,
		ScoreColor:       template.CSS("color: " + ScoreColor(report.OverallScore)),
		ScoreDescription: ScoreDescription(report.OverallScore),
		SchedulingLink:   SchedulingLink,
	})
	return out.String()
}

var emailTemplate = template.Must(template.New("audit-report").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="color-scheme" content="light dark">
  <meta name="supported-color-schemes" content="light dark">
  <title>Your LinkedIn Audit Results</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #374151; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff;">

  <div style="text-align: center; margin-bottom: 40px;">
    <h1 style="color: #1f2937; font-size: 28px; font-weight: 300; margin-bottom: 10px;">Your LinkedIn Audit Results</h1>
    <p style="color: #6b7280; font-size: 16px;">Professional analysis and strategic recommendations</p>
  </div>

  <div style="background: #f9fafb; border: 1px solid #e5e7eb; border-radius: 12px; padding: 30px; text-align: center; margin-bottom: 30px;">
    <div style="display: inline-flex; align-items: center; background: white; border: 1px solid #d1d5db; border-radius: 50px; padding: 15px 25px; margin-bottom: 15px;">
      <span style="{{.ScoreColor}}; font-size: 24px; font-weight: bold;">{{.Report.OverallScore}}/100</span>
    </div>
    <div style="{{.ScoreColor}}; font-size: 18px; font-weight: 600; margin-bottom: 5px;">{{.ScoreDescription}}</div>
    <div style="color: #6b7280; font-size: 14px;">Current LinkedIn Performance</div>
  </div>

  <div style="margin-bottom: 30px;">
    <h2 style="color: #1e40af; font-size: 20px; font-weight: 600; margin-bottom: 15px;">Profile Analysis</h2>
    <div style="background: white; border: 1px solid #e5e7eb; border-radius: 8px; padding: 20px;">
      <p style="margin: 0; line-height: 1.7; color: #1f2937;">{{.Report.ProfileAnalysis}}</p>
    </div>
  </div>

  <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-bottom: 30px;">
    <div>
      <h3 style="color: #065f46; font-size: 18px; font-weight: 600; margin-bottom: 15px;">Current Strengths</h3>
      <div style="background: #ecfdf5; border: 1px solid #d1fae5; border-radius: 8px; padding: 20px;">
        <ul style="margin: 0; padding-left: 20px;">
          {{range .Report.Strengths}}<li style="margin-bottom: 8px; color: #065f46;">{{.}}</li>
          {{end}}
        </ul>
      </div>
    </div>

    <div>
      <h3 style="color: #1e40af; font-size: 18px; font-weight: 600; margin-bottom: 15px;">Priority Improvements</h3>
      <div style="background: #eff6ff; border: 1px solid #bfdbfe; border-radius: 8px; padding: 20px;">
        <ul style="margin: 0; padding-left: 20px;">
          {{range .Report.Improvements}}<li style="margin-bottom: 8px; color: #1e40af;">{{.}}</li>
          {{end}}
        </ul>
      </div>
    </div>
  </div>

  <div style="margin-bottom: 30px;">
    <h2 style="color: #7c3aed; font-size: 20px; font-weight: 600; margin-bottom: 15px;">Strategic Insights</h2>
    <div style="background: white; border: 1px solid #e5e7eb; border-radius: 8px; padding: 20px;">
      <p style="margin: 0; line-height: 1.7; color: #1f2937;">{{.Report.QuestionInsights}}</p>
    </div>
  </div>

  <div style="margin-bottom: 30px;">
    <h2 style="color: #1e40af; font-size: 20px; font-weight: 600; margin-bottom: 15px;">Recommended Actions</h2>
    <div style="background: #eff6ff; border: 1px solid #e5e7eb; border-radius: 8px; padding: 20px;">
      <p style="margin: 0; line-height: 1.7; color: #1f2937;">{{.Report.PersonalizedRecommendations}}</p>
    </div>
  </div>

  <div style="margin-bottom: 30px;">
    <h2 style="color: #1e40af; font-size: 20px; font-weight: 600; margin-bottom: 15px;">Your 30-Day Action Plan</h2>
    <div style="background: white; border: 1px solid #e5e7eb; border-radius: 8px; padding: 20px;">
      <p style="margin: 0; line-height: 1.7; color: #1f2937;">{{.Report.ActionPlan}}</p>
    </div>
  </div>

  <div style="background: #f9fafb; border: 1px solid #e5e7eb; border-radius: 12px; padding: 30px; text-align: center; margin-bottom: 30px;">
    <h3 style="color: #1f2937; font-size: 22px; font-weight: 300; margin-bottom: 15px;">Ready to Implement Your Strategy?</h3>
    <p style="color: #6b7280; margin-bottom: 25px; line-height: 1.6;">Transform your LinkedIn presence with expert guidance and proven strategies tailored to your specific goals.</p>

    <div style="background: white; border: 1px solid #e5e7eb; border-radius: 12px; padding: 20px; margin-bottom: 25px;">
      <h4 style="color: #1f2937; font-size: 18px; font-weight: 600; margin-bottom: 10px;">Professional LinkedIn Strategy Session</h4>
      <p style="color: #6b7280; margin-bottom: 0;">Get personalized implementation support and advanced strategies to accelerate your LinkedIn success.</p>
    </div>

    <a href="{{.SchedulingLink}}" style="display: inline-block; background: #2563eb; color: white; text-decoration: none; padding: 15px 30px; border-radius: 8px; font-weight: 600; font-size: 16px; margin-bottom: 20px;">Schedule Strategy Session</a>
  </div>

  <div style="text-align: center; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #6b7280; font-size: 14px;">
    <p style="color: #6b7280;">Thank you for using our LinkedIn Audit tool!</p>
    <p style="margin: 0; color: #6b7280;">This analysis was generated specifically for {{.Name}}</p>
  </div>

</body>
</html>
`))
