// Package oracle grades candidate answers against question rubrics using
// an LLM. It is the interview engine's scoring oracle; the engine treats
// any failure here as a degraded turn, never a fatal one.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/intervue/internal/interview"
	"github.com/abhisek/intervue/internal/llm"
)

// Config holds grading parameters.
type Config struct {
	// MaxTokens bounds the grade response. Grades are tiny; 512 is ample.
	MaxTokens int

	// Temperature for grading. Zero keeps scores repeatable.
	Temperature float64

	// Timeout bounds one grading call. Expiry counts as an oracle failure
	// and the engine falls back to the floor grade.
	Timeout time.Duration
}

// DefaultConfig returns the standard grading parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 512,
		Timeout:   30 * time.Second,
	}
}

// Grader scores answers with an LLM. It implements interview.Oracle.
type Grader struct {
	provider llm.Provider
	cfg      Config
}

var _ interview.Oracle = (*Grader)(nil)

// NewGrader creates a Grader on top of the given provider.
func NewGrader(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

type gradeOutput struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Evaluate grades one answer against its rubric.
func (g *Grader) Evaluate(ctx context.Context, questionText, answerText, rubric string) (interview.Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "grade")
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: graderSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradeUserMessage(questionText, answerText, rubric)},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return interview.Evaluation{}, fmt.Errorf("grade answer: %w", err)
	}

	var out gradeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return interview.Evaluation{}, fmt.Errorf("parse grade response: %w", err)
	}

	return interview.Evaluation{
		Score:    out.Score,
		Feedback: out.Feedback,
	}, nil
}
