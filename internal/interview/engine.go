package interview

import "github.com/abhisek/intervue/internal/bank"

// ClampScore forces an oracle score into the 1-5 range. The oracle contract
// promises in-range values, but the engine treats out-of-range defensively
// rather than validating: 0 grades as 1, 9 grades as 5.
func ClampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}

// ApplyScore updates difficulty and counters for one graded answer.
//
// A pass (score >= SuccessCutoff) resets the failure streak and climbs the
// ladder: Easy → Medium → Hard; at Hard it counts toward HardPassed instead.
// A failure (score <= FailureCutoff) extends the streak and demotes Hard to
// Medium. Scores in between (3 with the defaults) change nothing.
func ApplyScore(cfg Config, s *State, score int) {
	score = ClampScore(score)

	switch {
	case score >= cfg.SuccessCutoff:
		s.ConsecutiveFailures = 0
		switch s.CurrentDifficulty {
		case bank.Easy:
			s.CurrentDifficulty = bank.Medium
		case bank.Medium:
			s.CurrentDifficulty = bank.Hard
		case bank.Hard:
			s.HardPassed++
		}

	case score <= cfg.FailureCutoff:
		s.ConsecutiveFailures++
		if s.CurrentDifficulty == bank.Hard {
			s.CurrentDifficulty = bank.Medium
		}
	}
}

// CheckTermination evaluates the break conditions in strict priority order:
// failure streak, then success streak, then question cap. Pool exhaustion is
// a separate condition, raised by the controller when selection comes up
// empty after a continue.
func CheckTermination(cfg Config, s *State) Reason {
	if s.ConsecutiveFailures >= cfg.FailureThreshold {
		return ReasonFailure
	}
	if s.HardPassed >= cfg.SuccessThreshold {
		return ReasonSuccess
	}
	if len(s.AskedIDs) >= cfg.MaxQuestions {
		return ReasonLimit
	}
	return ReasonNone
}
