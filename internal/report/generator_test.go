package report

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/intervue/internal/bank"
	"github.com/abhisek/intervue/internal/interview"
	"github.com/abhisek/intervue/internal/llm"
)

func sampleTranscript() []interview.GradedExchange {
	return []interview.GradedExchange{
		{
			QuestionID: "f-1",
			Topic:      "Formulas",
			Difficulty: bank.Easy,
			Question:   "What does SUM do?",
			Answer:     "Adds numbers in a range.",
			Score:      5,
			Feedback:   "Complete.",
		},
		{
			QuestionID: "l-1",
			Topic:      "Lookups",
			Difficulty: bank.Medium,
			Question:   "Explain VLOOKUP.",
			Answer:     "Looks things up vertically.",
			Score:      2,
			Feedback:   "Too vague.",
		},
	}
}

func TestGenerator_ReturnsReportText(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("## Overall Performance Summary\nStrong on formulas.")},
	)
	g := NewGenerator(mock, DefaultConfig())

	report, err := g.Summarize(context.Background(), sampleTranscript())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !strings.Contains(report, "Overall Performance Summary") {
		t.Errorf("report = %q", report)
	}
}

func TestGenerator_PromptCarriesTranscript(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("report")},
	)
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Summarize(context.Background(), sampleTranscript()); err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	body := mock.Calls[0].Messages[0].Content

	// Difficulty serializes as its name, and answers ride along verbatim.
	for _, want := range []string{`"difficulty": "Medium"`, "Looks things up vertically.", "Too vague."} {
		if !strings.Contains(body, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != nil {
		t.Error("report request should be free-form, not schema constrained")
	}
}

func TestGenerator_EmptyTranscriptRejected(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider(), DefaultConfig())

	if _, err := g.Summarize(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty transcript")
	}
}

func TestGenerator_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails every call
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Summarize(context.Background(), sampleTranscript()); err == nil {
		t.Fatal("expected error from failing provider")
	}
}
