package audit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beigestudio/linkedin-lead-lab-report/internal/catalog"
)

func answersWith(option string, count int) []AnsweredQuestion {
	answers := make([]AnsweredQuestion, 0, count)
	for i := 0; i < count; i++ {
		answers = append(answers, AnsweredQuestion{
			Question: fmt.Sprintf("question %d", i+1),
			Answer:   option,
		})
	}
	return answers
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name     string
		answers  []AnsweredQuestion
		expected int
	}{
		{"empty answer list yields base score", nil, 50},
		{"empty slice yields base score", []AnsweredQuestion{}, 50},
		{"nine strong answers clamp at 100", answersWith("Daily", 9), 100},
		{"nine moderate answers", answersWith("Weekly", 9), 86},
		{"nine weak answers", answersWith("Never", 9), 59},
		{"unrecognized answers count as weak", answersWith("not a real option", 9), 59},
		{"single strong answer", answersWith("Yes, crystal clear", 1), 58},
		{
			"mixed tiers",
			[]AnsweredQuestion{
				{Answer: "Daily"},
				{Answer: "Weekly"},
				{Answer: "Never"},
			},
			63,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeScore(tt.answers))
		})
	}
}

// The clamp must hold for any combination of real catalog options.
func TestComputeScore_BoundsOverCatalog(t *testing.T) {
	for _, q := range catalog.Questions() {
		for _, option := range q.Options {
			score := ComputeScore(answersWith(option, 9))
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
