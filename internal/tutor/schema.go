package tutor

import "github.com/abhisek/safetypro/internal/llm"

// Ratings the analysis schema allows.
const (
	RatingCorrect   = "Correct"
	RatingPartial   = "Partially Correct"
	RatingIncorrect = "Incorrect"
)

// AnalysisSchema defines the JSON schema for case study grading.
var AnalysisSchema = &llm.Schema{
	Name:        "answer-analysis",
	Description: "Rating and short feedback on a learner's answer to a warehouse safety scenario",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rating": map[string]any{
				"type":        "string",
				"enum":        []any{RatingCorrect, RatingPartial, RatingIncorrect},
				"description": "Overall judgement of the answer against the reference",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Constructive feedback under 100 words, pointing out anything the learner missed",
			},
		},
		"required":             []any{"rating", "feedback"},
		"additionalProperties": false,
	},
}
