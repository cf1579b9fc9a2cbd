// Package interview implements the live interview screen: the question
// and answer loop between the candidate and the grading engine.
package interview

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervue/internal/bank"
	"github.com/abhisek/intervue/internal/delivery"
	iv "github.com/abhisek/intervue/internal/interview"
	"github.com/abhisek/intervue/internal/router"
	"github.com/abhisek/intervue/internal/screen"
	"github.com/abhisek/intervue/internal/screens/report"
	"github.com/abhisek/intervue/internal/store"
	"github.com/abhisek/intervue/internal/ui/components"
	"github.com/abhisek/intervue/internal/ui/layout"
)

// InterviewScreen implements screen.Screen for the active interview.
type InterviewScreen struct {
	ctrl  *iv.Controller
	repo  store.InterviewRepo
	sinks []delivery.Sink
	input components.TextInput

	question        *bank.Question
	lastExchange    *iv.GradedExchange
	pendingOutcome  *iv.Outcome
	showingFeedback bool
	grading         bool
	finishing       bool
	quitConfirm     bool
	errMsg          string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.HeaderInfoProvider = (*InterviewScreen)(nil)

// New creates the interview screen for a wired controller. repo may be
// nil when persistence is disabled; sinks receive the outcome when the
// interview completes.
func New(ctrl *iv.Controller, repo store.InterviewRepo, sinks ...delivery.Sink) *InterviewScreen {
	return &InterviewScreen{
		ctrl:  ctrl,
		repo:  repo,
		sinks: sinks,
		input: components.NewTextInput("Type your answer...", 0),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return tea.Batch(s.startCmd(), s.input.Init())
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) HeaderInfo() (string, string) {
	progress := fmt.Sprintf("Q %d", len(s.ctrl.State().Transcript)+1)
	if s.showingFeedback || s.pendingOutcome != nil {
		progress = fmt.Sprintf("Q %d", len(s.ctrl.State().Transcript))
	}
	return s.ctrl.Candidate(), progress
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave interview"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.grading || s.finishing:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case gradedMsg:
		return s.handleGraded(msg)

	case finishedMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: report.New(msg.Outcome)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.question != nil && !s.showingFeedback && !s.quitConfirm && !s.grading {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *InterviewScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Turn.Outcome != nil {
		// Empty question bank: nothing to ask.
		return s, s.finishCmd(msg.Turn.Outcome)
	}
	s.question = msg.Turn.Question
	return s, nil
}

func (s *InterviewScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	s.grading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.lastExchange = msg.Turn.Exchange
	s.showingFeedback = true
	s.question = msg.Turn.Question
	s.pendingOutcome = msg.Turn.Outcome
	return s, nil
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		s.lastExchange = nil
		if s.pendingOutcome != nil {
			s.finishing = true
			return s, s.finishCmd(s.pendingOutcome)
		}
		return s, s.input.Reset()
	}

	if s.grading || s.finishing || s.question == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer sends the typed answer to the controller for grading.
func (s *InterviewScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	s.grading = true
	return s, func() tea.Msg {
		ctx := context.Background()
		turn, err := s.ctrl.Submit(ctx, answer)
		if err != nil {
			return gradedMsg{Err: err}
		}

		if s.repo != nil && turn.Exchange != nil {
			ex := turn.Exchange
			// Persistence is best effort; the interview goes on without it.
			_ = s.repo.AppendExchange(ctx, s.ctrl.SessionID(), store.Exchange{
				Position:   len(s.ctrl.State().Transcript) - 1,
				QuestionID: ex.QuestionID,
				Topic:      ex.Topic,
				Difficulty: ex.Difficulty.String(),
				Question:   ex.Question,
				Answer:     ex.Answer,
				Score:      ex.Score,
				Feedback:   ex.Feedback,
				CreatedAt:  time.Now(),
			})
		}

		return gradedMsg{Turn: turn}
	}
}

// startCmd records the session and draws the opening question.
func (s *InterviewScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if s.repo != nil {
			_ = s.repo.Create(ctx, store.Interview{
				ID:        s.ctrl.SessionID(),
				Candidate: s.ctrl.Candidate(),
				StartedAt: time.Now(),
			})
		}

		turn, err := s.ctrl.Start(ctx)
		return startedMsg{Turn: turn, Err: err}
	}
}

// finishCmd persists and delivers the outcome, then moves to the report
// screen. Delivery failures don't block the candidate from seeing their
// report in the terminal.
func (s *InterviewScreen) finishCmd(out *iv.Outcome) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if s.repo != nil {
			_ = s.repo.Finish(ctx, s.ctrl.SessionID(),
				out.EndedAt, out.Reason.String(), out.Report)
		}
		_ = delivery.All(ctx, out, s.sinks...)
		return finishedMsg{Outcome: out}
	}
}
