package interview

import (
	"time"

	"github.com/abhisek/intervue/internal/bank"
)

// Status is the lifecycle phase of a session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusComplete
)

// Reason explains why an interview ended. ReasonNone means it has not.
type Reason int

const (
	ReasonNone      Reason = iota
	ReasonFailure          // consecutive-failure threshold reached
	ReasonSuccess          // enough Hard questions passed
	ReasonLimit            // question cap reached
	ReasonExhausted        // no unused questions left in the pool
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "in progress"
	case ReasonFailure:
		return "failure streak"
	case ReasonSuccess:
		return "advanced questions passed"
	case ReasonLimit:
		return "question limit reached"
	case ReasonExhausted:
		return "question pool exhausted"
	}
	return "unknown"
}

// GradedExchange records one question-answer-score cycle. Entries are
// appended to the transcript in interview order and never mutated.
type GradedExchange struct {
	QuestionID string          `json:"question_id"`
	Topic      string          `json:"topic"`
	Difficulty bank.Difficulty `json:"-"`
	Question   string          `json:"question"`
	Answer     string          `json:"candidate_answer"`
	Score      int             `json:"score"`
	Feedback   string          `json:"feedback"`
}

// State is the mutable record of one interview in progress. It is owned by
// a single Controller; concurrent sessions each get their own instance.
type State struct {
	// CurrentDifficulty is the target level for the next question.
	CurrentDifficulty bank.Difficulty

	// ConsecutiveFailures counts low-scoring answers since the last pass.
	ConsecutiveFailures int

	// HardPassed counts passes while at Hard. Never decremented.
	HardPassed int

	// AskedIDs lists graded question ids in interview order. A question id
	// never appears twice.
	AskedIDs []string

	// Asked is the membership set backing AskedIDs, used for selector
	// exclusion.
	Asked map[string]bool

	// Transcript is the ordered record of graded exchanges.
	Transcript []GradedExchange

	// CurrentQuestion is the question awaiting an answer. Nil before the
	// first question is drawn and after the interview ends.
	CurrentQuestion *bank.Question

	// Status transitions NotStarted → InProgress → Complete, once.
	Status Status

	// Reason is set exactly once, when Status becomes Complete.
	Reason Reason

	// StartedAt is when the first question was drawn.
	StartedAt time.Time
}

// NewState creates a session state at the configured starting difficulty.
func NewState(cfg Config) *State {
	return &State{
		CurrentDifficulty: cfg.InitialDifficulty,
		Asked:             make(map[string]bool),
	}
}

// record appends a graded exchange and marks its question id as asked.
func (s *State) record(ex GradedExchange) {
	s.Transcript = append(s.Transcript, ex)
	s.AskedIDs = append(s.AskedIDs, ex.QuestionID)
	s.Asked[ex.QuestionID] = true
}
