package oracle

import "github.com/abhisek/intervue/internal/llm"

// GradeSchema defines the JSON shape the grader must return.
var GradeSchema = &llm.Schema{
	Name:        "answer-grade",
	Description: "A rubric-based grade for one interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "How well the answer satisfies the rubric, from 1 (missed entirely) to 5 (nailed it)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One sentence of constructive feedback for the candidate",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}
