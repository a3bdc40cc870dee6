package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchReport(t *testing.T) {
	longProse := strings.Repeat("Plenty of substance in this section. ", 3)
	defaults := SynthesizeDefault(testProfile(), 64)

	report := Report{
		OverallScore:                999,
		ProfileAnalysis:             longProse,
		QuestionInsights:            "short",
		PersonalizedRecommendations: "   ",
		ActionPlan:                  longProse,
		Strengths:                   []string{"one", "", "two", "three", "four", "five"},
		Improvements:                nil,
	}

	patched := patchReport(report, testProfile(), 64)

	assert.Equal(t, 64, patched.OverallScore)
	assert.Equal(t, longProse, patched.ProfileAnalysis)
	assert.Equal(t, defaults.QuestionInsights, patched.QuestionInsights)
	assert.Equal(t, defaults.PersonalizedRecommendations, patched.PersonalizedRecommendations)
	assert.Equal(t, longProse, patched.ActionPlan)
	assert.Equal(t, []string{"one", "two", "three", "four"}, patched.Strengths)
	assert.Equal(t, defaults.Improvements, patched.Improvements)
}

func TestPatchProse(t *testing.T) {
	long := strings.Repeat("x", minProseLength)

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"empty replaced", "", "fallback"},
		{"whitespace replaced", "   \n\t ", "fallback"},
		{"below floor replaced", strings.Repeat("x", minProseLength-1), "fallback"},
		{"at floor kept", long, long},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, patchProse(tt.value, "fallback"))
		})
	}
}

func TestPatchList(t *testing.T) {
	defaults := []string{"d1", "d2"}

	tests := []struct {
		name     string
		items    []string
		expected []string
	}{
		{"nil replaced", nil, defaults},
		{"empty replaced", []string{}, defaults},
		{"blanks only replaced", []string{"", "  "}, defaults},
		{"blanks filtered", []string{"a", "", "b"}, []string{"a", "b"}},
		{"capped at four", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c", "d"}},
		{"valid kept", []string{"a"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, patchList(tt.items, defaults))
		})
	}
}
