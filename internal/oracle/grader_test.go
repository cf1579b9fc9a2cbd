package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/intervue/internal/llm"
)

func TestGrader_ParsesGrade(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score":4,"feedback":"Good use of SUMIFS."}`)},
	)
	g := NewGrader(mock, DefaultConfig())

	ev, err := g.Evaluate(context.Background(), "Explain SUMIFS.", "It sums with conditions.", "conditional sum")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Score != 4 {
		t.Errorf("Score = %d, want 4", ev.Score)
	}
	if ev.Feedback != "Good use of SUMIFS." {
		t.Errorf("Feedback = %q", ev.Feedback)
	}
}

func TestGrader_RequestCarriesRubricAndSchema(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score":3,"feedback":"ok"}`)},
	)
	g := NewGrader(mock, DefaultConfig())

	_, err := g.Evaluate(context.Background(), "What does SUM do?", "adds", "mentions addition over a range")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != GradeSchema.Name {
		t.Errorf("request schema = %+v, want %s", req.Schema, GradeSchema.Name)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 user message, got %d", len(req.Messages))
	}
	body := req.Messages[0].Content
	if !strings.Contains(body, "mentions addition over a range") {
		t.Errorf("user message missing rubric: %q", body)
	}
	if !strings.Contains(body, "What does SUM do?") {
		t.Errorf("user message missing question: %q", body)
	}
	if req.System == "" {
		t.Error("request has no system prompt")
	}
}

func TestGrader_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("boom")},
	)
	g := NewGrader(mock, DefaultConfig())

	_, err := g.Evaluate(context.Background(), "q", "a", "r")
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestGrader_MalformedGradeJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
	)
	g := NewGrader(mock, DefaultConfig())

	_, err := g.Evaluate(context.Background(), "q", "a", "r")
	if err == nil {
		t.Fatal("expected parse error for malformed grade")
	}
}
