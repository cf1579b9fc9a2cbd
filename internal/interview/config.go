package interview

import "github.com/abhisek/intervue/internal/bank"

// Config holds the adaptation and termination thresholds for a session.
type Config struct {
	// FailureThreshold ends the interview after this many consecutive
	// low-scoring answers.
	FailureThreshold int

	// SuccessThreshold ends the interview once this many Hard questions
	// have been passed.
	SuccessThreshold int

	// MaxQuestions caps the number of graded questions per interview.
	MaxQuestions int

	// InitialDifficulty is the level of the first question.
	InitialDifficulty bank.Difficulty

	// SuccessCutoff is the minimum score counted as a pass.
	SuccessCutoff int

	// FailureCutoff is the maximum score counted as a failure. Scores
	// strictly between FailureCutoff and SuccessCutoff (score 3 with the
	// defaults) change nothing.
	FailureCutoff int
}

// DefaultConfig returns the standard interview thresholds.
func DefaultConfig() Config {
	return Config{
		FailureThreshold:  2,
		SuccessThreshold:  3,
		MaxQuestions:      15,
		InitialDifficulty: bank.Easy,
		SuccessCutoff:     4,
		FailureCutoff:     2,
	}
}
