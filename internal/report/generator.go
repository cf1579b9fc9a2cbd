// Package report turns a finished interview transcript into a written
// performance report using an LLM provider.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/intervue/internal/interview"
	"github.com/abhisek/intervue/internal/llm"
)

// Config controls report generation.
type Config struct {
	// MaxTokens caps the length of the generated report.
	MaxTokens int

	// Temperature for the generation request. Reports benefit from a
	// little variation, so the default is above zero.
	Temperature float64

	// Timeout bounds a single generation call.
	Timeout time.Duration
}

// DefaultConfig returns the report generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
		Timeout:     60 * time.Second,
	}
}

// Generator produces Markdown performance reports from graded
// transcripts. It implements interview.Reporter.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

var _ interview.Reporter = (*Generator)(nil)

// NewGenerator returns a Generator backed by the given provider.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Generator{provider: provider, cfg: cfg}
}

// transcriptEntry is the JSON shape handed to the model. Difficulty is
// serialized as its name so the model reads "Hard" rather than an index.
type transcriptEntry struct {
	QuestionID string `json:"question_id"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
}

// Summarize generates the final report for a transcript. The transcript
// must be non-empty; callers decide what to present for an interview
// that never got off the ground.
func (g *Generator) Summarize(ctx context.Context, transcript []interview.GradedExchange) (string, error) {
	if len(transcript) == 0 {
		return "", fmt.Errorf("report: empty transcript")
	}

	entries := make([]transcriptEntry, len(transcript))
	for i, ex := range transcript {
		entries[i] = transcriptEntry{
			QuestionID: ex.QuestionID,
			Topic:      ex.Topic,
			Difficulty: ex.Difficulty.String(),
			Question:   ex.Question,
			Answer:     ex.Answer,
			Score:      ex.Score,
			Feedback:   ex.Feedback,
		}
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal transcript: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "report")
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: reportSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReportUserMessage(string(raw))},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("report: generate: %w", err)
	}
	return string(resp.Content), nil
}
