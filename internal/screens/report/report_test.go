package report

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervue/internal/bank"
	iv "github.com/abhisek/intervue/internal/interview"
)

func testOutcome() *iv.Outcome {
	return &iv.Outcome{
		Candidate: "Ada Lovelace",
		SessionID: "abc-123",
		StartedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		EndedAt:   time.Date(2026, 8, 1, 10, 25, 0, 0, time.UTC),
		Transcript: []iv.GradedExchange{
			{
				QuestionID: "formulas-easy-1",
				Topic:      "Formulas",
				Difficulty: bank.Easy,
				Question:   "What does SUM do?",
				Answer:     "Adds a range of cells.",
				Score:      4,
				Feedback:   "Correct and concise.",
			},
			{
				QuestionID: "pivot-medium-1",
				Topic:      "Pivot Tables",
				Difficulty: bank.Medium,
				Question:   "How do you group dates in a pivot table?",
				Answer:     "Not sure.",
				Score:      2,
				Feedback:   "Missed the grouping dialog entirely.",
			},
		},
		Report: "## Overall Performance Summary\n\nA promising start.",
		Reason: iv.ReasonSuccess,
	}
}

func TestReportScreen_Title(t *testing.T) {
	s := New(testOutcome())
	if s.Title() != "Performance Report" {
		t.Errorf("Title = %q, want %q", s.Title(), "Performance Report")
	}
}

func TestReportScreen_Display(t *testing.T) {
	s := New(testOutcome())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty report view")
	}
	if !strings.Contains(view, "Ada Lovelace") {
		t.Error("expected candidate name in view")
	}
	if !strings.Contains(view, "average score: 3.0/5") {
		t.Error("expected average score line in view")
	}
	if !strings.Contains(view, "promising start") {
		t.Error("expected report body in view")
	}
}

func TestReportScreen_NilOutcome(t *testing.T) {
	s := New(nil)
	if s.View(80, 24) != "" {
		t.Error("expected empty view for nil outcome")
	}
}

func TestReportScreen_Scroll(t *testing.T) {
	s := New(testOutcome())

	s.Update(tea.KeyPressMsg{Code: 'j'})
	if s.offset != 1 {
		t.Errorf("offset = %d after down, want 1", s.offset)
	}
	s.Update(tea.KeyPressMsg{Code: 'k'})
	if s.offset != 0 {
		t.Errorf("offset = %d after up, want 0", s.offset)
	}
	// Up at the top stays at zero.
	s.Update(tea.KeyPressMsg{Code: 'k'})
	if s.offset != 0 {
		t.Errorf("offset = %d after up at top, want 0", s.offset)
	}
}

func TestReportScreen_QuitKeys(t *testing.T) {
	for _, code := range []rune{'q', tea.KeyEnter, tea.KeyEscape} {
		s := New(testOutcome())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Errorf("expected a quit command for key %q", code)
		}
	}
}

func TestReportScreen_KeyHints(t *testing.T) {
	s := New(testOutcome())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
