package interview

import (
	iv "github.com/abhisek/intervue/internal/interview"
)

// startedMsg is sent when the controller has drawn the opening question.
type startedMsg struct {
	Turn *iv.Turn
	Err  error
}

// gradedMsg is sent when an answer has been graded and the next turn
// resolved.
type gradedMsg struct {
	Turn *iv.Turn
	Err  error
}

// finishedMsg is sent when the outcome has been persisted and delivered.
type finishedMsg struct {
	Outcome *iv.Outcome
}
