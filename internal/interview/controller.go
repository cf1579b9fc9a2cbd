package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/intervue/internal/bank"
)

// ErrInvalidState is returned when Start or Submit is called out of
// sequence. It marks a programming-contract violation in the caller, never
// a recoverable runtime condition.
var ErrInvalidState = errors.New("invalid interview state")

// FallbackFeedback is the sentinel feedback recorded when the scoring
// oracle fails. The turn still grades (score 1) so the interview always
// reaches a terminal state.
const FallbackFeedback = "Error: Could not evaluate the answer."

// Evaluation is the scoring oracle's verdict on one answer.
type Evaluation struct {
	Score    int
	Feedback string
}

// Oracle grades a candidate answer against a question's rubric. The
// controller treats any error as a degraded turn, never as fatal.
type Oracle interface {
	Evaluate(ctx context.Context, questionText, answerText, rubric string) (Evaluation, error)
}

// Reporter synthesizes a narrative report from a finished transcript.
type Reporter interface {
	Summarize(ctx context.Context, transcript []GradedExchange) (string, error)
}

// Outcome is what the controller exposes to delivery sinks on completion.
type Outcome struct {
	Candidate  string
	SessionID  string
	StartedAt  time.Time
	EndedAt    time.Time
	Transcript []GradedExchange
	Report     string
	Reason     Reason
}

// Turn is the result of one controller operation: either the next question
// to present, or the completed outcome. Exchange carries the grade for the
// answer just submitted (nil on the opening turn).
type Turn struct {
	Exchange *GradedExchange
	Question *bank.Question
	Outcome  *Outcome
}

// Controller orchestrates a single interview: it owns the session state,
// invokes the oracle and reporter, and drives the selection and
// termination policy. It is not safe for concurrent use; one candidate,
// one controller, one goroutine.
type Controller struct {
	cfg       Config
	selector  *Selector
	oracle    Oracle
	reporter  Reporter
	state     *State
	candidate string
	sessionID string
}

// NewController wires a controller for one candidate.
func NewController(cfg Config, selector *Selector, oracle Oracle, reporter Reporter, candidate, sessionID string) *Controller {
	return &Controller{
		cfg:       cfg,
		selector:  selector,
		oracle:    oracle,
		reporter:  reporter,
		state:     NewState(cfg),
		candidate: candidate,
		sessionID: sessionID,
	}
}

// State exposes the live session state for rendering. Callers must treat
// it as read-only; the controller is the sole mutator.
func (c *Controller) State() *State { return c.state }

// SessionID returns the session identifier.
func (c *Controller) SessionID() string { return c.sessionID }

// Candidate returns the candidate identifier.
func (c *Controller) Candidate() string { return c.candidate }

// Start draws the first question. An empty pool completes the session
// immediately with an empty transcript.
func (c *Controller) Start(ctx context.Context) (*Turn, error) {
	if c.state.Status != StatusNotStarted {
		return nil, fmt.Errorf("%w: interview already started", ErrInvalidState)
	}

	c.state.StartedAt = time.Now()
	q := c.selector.Next(c.state.CurrentDifficulty, c.state.Asked)
	if q == nil {
		return &Turn{Outcome: c.complete(ctx, ReasonExhausted)}, nil
	}

	c.state.CurrentQuestion = q
	c.state.Status = StatusInProgress
	return &Turn{Question: q}, nil
}

// Submit processes one candidate answer: grade, record, adapt, then either
// present the next question or complete. Only valid while a question is
// pending.
func (c *Controller) Submit(ctx context.Context, answer string) (*Turn, error) {
	if c.state.Status != StatusInProgress || c.state.CurrentQuestion == nil {
		return nil, fmt.Errorf("%w: no question is pending", ErrInvalidState)
	}

	q := c.state.CurrentQuestion

	ev, err := c.oracle.Evaluate(ctx, q.Text, answer, q.Rubric)
	if err != nil {
		// Degrade, don't fail: a broken oracle grades the turn at the
		// floor and the interview proceeds.
		ev = Evaluation{Score: 1, Feedback: FallbackFeedback}
	}
	ev.Score = ClampScore(ev.Score)

	ex := GradedExchange{
		QuestionID: q.ID,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Question:   q.Text,
		Answer:     answer,
		Score:      ev.Score,
		Feedback:   ev.Feedback,
	}
	c.state.record(ex)

	ApplyScore(c.cfg, c.state, ev.Score)

	if reason := CheckTermination(c.cfg, c.state); reason != ReasonNone {
		return &Turn{Exchange: &ex, Outcome: c.complete(ctx, reason)}, nil
	}

	next := c.selector.Next(c.state.CurrentDifficulty, c.state.Asked)
	if next == nil {
		return &Turn{Exchange: &ex, Outcome: c.complete(ctx, ReasonExhausted)}, nil
	}

	c.state.CurrentQuestion = next
	return &Turn{Exchange: &ex, Question: next}, nil
}

// complete transitions to Complete exactly once and builds the outcome,
// including the narrative report. Reporter failure degrades to a
// placeholder so delivery still proceeds.
func (c *Controller) complete(ctx context.Context, reason Reason) *Outcome {
	c.state.Status = StatusComplete
	c.state.Reason = reason
	c.state.CurrentQuestion = nil

	var report string
	if len(c.state.Transcript) == 0 {
		report = "No questions were answered, so no performance report was generated."
	} else if r, err := c.reporter.Summarize(ctx, c.state.Transcript); err != nil {
		report = fmt.Sprintf("An error occurred while generating the report: %v", err)
	} else {
		report = r
	}

	return &Outcome{
		Candidate:  c.candidate,
		SessionID:  c.sessionID,
		StartedAt:  c.state.StartedAt,
		EndedAt:    time.Now(),
		Transcript: c.state.Transcript,
		Report:     report,
		Reason:     reason,
	}
}
