// internal/audit/parser.go
package audit

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/logger"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/metrics"
)

// reportSchema is the contract the model is asked to honor. The four prose
// sections must be non-empty strings. The list fields only need to be
// present; malformed or empty lists are patched with defaults rather than
// discarding an otherwise usable response.
const reportSchema = `{
	"type": "object",
	"required": ["profileAnalysis", "questionInsights", "personalizedRecommendations", "actionPlan", "strengths", "improvements"],
	"properties": {
		"profileAnalysis": {"type": "string", "minLength": 1},
		"questionInsights": {"type": "string", "minLength": 1},
		"personalizedRecommendations": {"type": "string", "minLength": 1},
		"actionPlan": {"type": "string", "minLength": 1}
	}
}`

var reportSchemaLoader = gojsonschema.NewStringLoader(reportSchema)

// modelPayload mirrors the six-field JSON the prompt requests. List fields
// are decoded leniently so a wrong-shaped list degrades to defaults instead
// of failing the whole parse.
type modelPayload struct {
	ProfileAnalysis             string          `json:"profileAnalysis"`
	QuestionInsights            string          `json:"questionInsights"`
	PersonalizedRecommendations string          `json:"personalizedRecommendations"`
	ActionPlan                  string          `json:"actionPlan"`
	Strengths                   json.RawMessage `json:"strengths"`
	Improvements                json.RawMessage `json:"improvements"`
}

// ParseModelOutput extracts a structured report from raw model output. One
// strict strategy: strip markdown fences, validate against the schema,
// decode. On any failure the entire response is discarded and a synthesized
// report is returned instead. Never returns an error.
func ParseModelOutput(raw string, profile ProfileInput, score int, log logger.Logger) Report {
	cleaned := stripCodeFences(raw)

	result, err := gojsonschema.Validate(reportSchemaLoader, gojsonschema.NewStringLoader(cleaned))
	if err != nil || !result.Valid() {
		details := "not valid JSON"
		if err == nil {
			msgs := make([]string, 0, len(result.Errors()))
			for _, e := range result.Errors() {
				msgs = append(msgs, e.String())
			}
			details = strings.Join(msgs, "; ")
		}
		log.Warn("model output failed schema validation, using synthesized report", map[string]interface{}{
			"reason": details,
		})
		metrics.ParserFallbacks.Inc()
		return SynthesizeDefault(profile, score)
	}

	var payload modelPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		log.Warn("model output decode failed, using synthesized report", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.ParserFallbacks.Inc()
		return SynthesizeDefault(profile, score)
	}

	return Report{
		OverallScore:                score,
		ProfileAnalysis:             payload.ProfileAnalysis,
		QuestionInsights:            payload.QuestionInsights,
		PersonalizedRecommendations: payload.PersonalizedRecommendations,
		ActionPlan:                  payload.ActionPlan,
		Strengths:                   decodeList(payload.Strengths, DefaultStrengths()),
		Improvements:                decodeList(payload.Improvements, DefaultImprovements()),
	}
}

// decodeList decodes a JSON list of strings, falling back to defaults when
// the value is missing, empty, or not list-shaped.
func decodeList(raw json.RawMessage, defaults []string) []string {
	if len(raw) == 0 {
		return defaults
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return defaults
	}

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

// stripCodeFences removes a surrounding markdown code block, which models
// commonly emit despite instructions.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
