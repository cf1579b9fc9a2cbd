package interview

import (
	"testing"

	"github.com/abhisek/intervue/internal/bank"
)

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{6, 5},
		{99, 5},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestApplyScore_LadderClimb(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)

	ApplyScore(cfg, s, 5)
	if s.CurrentDifficulty != bank.Medium {
		t.Fatalf("after first pass: difficulty = %v, want Medium", s.CurrentDifficulty)
	}
	ApplyScore(cfg, s, 4)
	if s.CurrentDifficulty != bank.Hard {
		t.Fatalf("after second pass: difficulty = %v, want Hard", s.CurrentDifficulty)
	}
	ApplyScore(cfg, s, 5)
	if s.CurrentDifficulty != bank.Hard {
		t.Errorf("pass at Hard changed difficulty to %v", s.CurrentDifficulty)
	}
	if s.HardPassed != 1 {
		t.Errorf("HardPassed = %d, want 1", s.HardPassed)
	}
}

func TestApplyScore_FailureStreakAndDemotion(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.CurrentDifficulty = bank.Hard

	ApplyScore(cfg, s, 1)
	if s.CurrentDifficulty != bank.Medium {
		t.Errorf("fail at Hard: difficulty = %v, want Medium", s.CurrentDifficulty)
	}
	if s.ConsecutiveFailures != 1 {
		t.Errorf("ConsecutiveFailures = %d, want 1", s.ConsecutiveFailures)
	}

	// Medium and Easy never demote.
	ApplyScore(cfg, s, 2)
	if s.CurrentDifficulty != bank.Medium {
		t.Errorf("fail at Medium: difficulty = %v, want Medium", s.CurrentDifficulty)
	}
	if s.ConsecutiveFailures != 2 {
		t.Errorf("ConsecutiveFailures = %d, want 2", s.ConsecutiveFailures)
	}
}

func TestApplyScore_PassResetsStreak(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.ConsecutiveFailures = 1

	ApplyScore(cfg, s, 4)
	if s.ConsecutiveFailures != 0 {
		t.Errorf("ConsecutiveFailures = %d, want 0 after a pass", s.ConsecutiveFailures)
	}
}

func TestApplyScore_MiddleScoreIsNoOp(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)
	s.CurrentDifficulty = bank.Medium
	s.ConsecutiveFailures = 1
	s.HardPassed = 1

	ApplyScore(cfg, s, 3)

	if s.CurrentDifficulty != bank.Medium {
		t.Errorf("difficulty = %v, want Medium unchanged", s.CurrentDifficulty)
	}
	if s.ConsecutiveFailures != 1 {
		t.Errorf("ConsecutiveFailures = %d, want 1 unchanged", s.ConsecutiveFailures)
	}
	if s.HardPassed != 1 {
		t.Errorf("HardPassed = %d, want 1 unchanged", s.HardPassed)
	}
}

func TestApplyScore_OutOfRangeScoresClamp(t *testing.T) {
	cfg := DefaultConfig()

	s := NewState(cfg)
	ApplyScore(cfg, s, 9) // clamps to 5: a pass
	if s.CurrentDifficulty != bank.Medium {
		t.Errorf("score 9: difficulty = %v, want Medium", s.CurrentDifficulty)
	}

	s = NewState(cfg)
	ApplyScore(cfg, s, -1) // clamps to 1: a failure
	if s.ConsecutiveFailures != 1 {
		t.Errorf("score -1: ConsecutiveFailures = %d, want 1", s.ConsecutiveFailures)
	}
}

func TestCheckTermination(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		mutate func(*State)
		want   Reason
	}{
		{"fresh state continues", func(s *State) {}, ReasonNone},
		{"failure threshold", func(s *State) { s.ConsecutiveFailures = 2 }, ReasonFailure},
		{"success threshold", func(s *State) { s.HardPassed = 3 }, ReasonSuccess},
		{"question cap", func(s *State) { s.AskedIDs = make([]string, 15) }, ReasonLimit},
		{"one short of failure", func(s *State) { s.ConsecutiveFailures = 1 }, ReasonNone},
		{"one short of cap", func(s *State) { s.AskedIDs = make([]string, 14) }, ReasonNone},
		{
			// Failure wins when several conditions hold at once.
			"failure beats success and cap",
			func(s *State) {
				s.ConsecutiveFailures = 2
				s.HardPassed = 3
				s.AskedIDs = make([]string, 15)
			},
			ReasonFailure,
		},
		{
			"success beats cap",
			func(s *State) {
				s.HardPassed = 3
				s.AskedIDs = make([]string, 15)
			},
			ReasonSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(cfg)
			tt.mutate(s)
			if got := CheckTermination(cfg, s); got != tt.want {
				t.Errorf("CheckTermination = %v, want %v", got, tt.want)
			}
		})
	}
}
