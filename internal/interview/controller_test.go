package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/intervue/internal/bank"
)

// scriptedOracle replays canned scores in order. A negative score means
// return an error for that turn.
type scriptedOracle struct {
	scores []int
	calls  int
}

func (o *scriptedOracle) Evaluate(_ context.Context, _, _, _ string) (Evaluation, error) {
	if o.calls >= len(o.scores) {
		return Evaluation{}, errors.New("oracle script exhausted")
	}
	score := o.scores[o.calls]
	o.calls++
	if score < 0 {
		return Evaluation{}, errors.New("oracle down")
	}
	return Evaluation{Score: score, Feedback: "noted"}, nil
}

type stubReporter struct {
	report string
	err    error
	got    []GradedExchange
}

func (r *stubReporter) Summarize(_ context.Context, transcript []GradedExchange) (string, error) {
	r.got = transcript
	if r.err != nil {
		return "", r.err
	}
	return r.report, nil
}

func newTestController(t *testing.T, pool *bank.Pool, scores []int) (*Controller, *stubReporter) {
	t.Helper()
	rep := &stubReporter{report: "solid performance"}
	ctrl := NewController(DefaultConfig(), NewSelector(pool, seededRNG()),
		&scriptedOracle{scores: scores}, rep, "Ada", "session-1")
	return ctrl, rep
}

// runInterview starts the controller and submits answers until it
// completes, returning the final outcome.
func runInterview(t *testing.T, ctrl *Controller) *Outcome {
	t.Helper()
	ctx := context.Background()

	turn, err := ctrl.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for turn.Outcome == nil {
		turn, err = ctrl.Submit(ctx, "my answer")
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	return turn.Outcome
}

func TestController_SuccessStreakEndsInterview(t *testing.T) {
	// 5,5 climbs Easy→Medium→Hard, then three Hard passes end it.
	pool := testPool(t, 3, 3, 5)
	ctrl, _ := newTestController(t, pool, []int{5, 5, 5, 5, 5})

	out := runInterview(t, ctrl)

	if out.Reason != ReasonSuccess {
		t.Fatalf("Reason = %v, want ReasonSuccess", out.Reason)
	}
	if len(out.Transcript) != 5 {
		t.Fatalf("transcript length = %d, want 5", len(out.Transcript))
	}
	wantDiffs := []bank.Difficulty{bank.Easy, bank.Medium, bank.Hard, bank.Hard, bank.Hard}
	for i, ex := range out.Transcript {
		if ex.Difficulty != wantDiffs[i] {
			t.Errorf("question %d difficulty = %v, want %v", i, ex.Difficulty, wantDiffs[i])
		}
	}
}

func TestController_FailureStreakEndsInterview(t *testing.T) {
	pool := testPool(t, 5, 5, 5)
	ctrl, _ := newTestController(t, pool, []int{2, 1})

	out := runInterview(t, ctrl)

	if out.Reason != ReasonFailure {
		t.Fatalf("Reason = %v, want ReasonFailure", out.Reason)
	}
	if len(out.Transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(out.Transcript))
	}
}

func TestController_QuestionCapEndsInterview(t *testing.T) {
	// Score 3 neither passes nor fails, so only the cap can end this one.
	pool := testPool(t, 20, 0, 0)
	scores := make([]int, 15)
	for i := range scores {
		scores[i] = 3
	}
	ctrl, _ := newTestController(t, pool, scores)

	out := runInterview(t, ctrl)

	if out.Reason != ReasonLimit {
		t.Fatalf("Reason = %v, want ReasonLimit", out.Reason)
	}
	if len(out.Transcript) != 15 {
		t.Fatalf("transcript length = %d, want 15", len(out.Transcript))
	}
}

func TestController_PoolExhaustionEndsInterview(t *testing.T) {
	pool := testPool(t, 3, 0, 0)
	ctrl, _ := newTestController(t, pool, []int{3, 3, 3})

	out := runInterview(t, ctrl)

	if out.Reason != ReasonExhausted {
		t.Fatalf("Reason = %v, want ReasonExhausted", out.Reason)
	}
	if len(out.Transcript) != 3 {
		t.Fatalf("transcript length = %d, want 3", len(out.Transcript))
	}
}

func TestController_NoQuestionRepeats(t *testing.T) {
	pool := testPool(t, 4, 4, 4)
	scores := make([]int, 12)
	for i := range scores {
		scores[i] = 3
	}
	ctrl, _ := newTestController(t, pool, scores)

	out := runInterview(t, ctrl)

	seen := make(map[string]bool)
	for _, ex := range out.Transcript {
		if seen[ex.QuestionID] {
			t.Fatalf("question %s asked twice", ex.QuestionID)
		}
		seen[ex.QuestionID] = true
	}
	state := ctrl.State()
	if len(state.AskedIDs) != len(state.Transcript) {
		t.Errorf("AskedIDs length %d != transcript length %d",
			len(state.AskedIDs), len(state.Transcript))
	}
}

func TestController_OracleFailureGradesAtFloor(t *testing.T) {
	pool := testPool(t, 5, 5, 5)
	ctrl, _ := newTestController(t, pool, []int{-1, -1})

	out := runInterview(t, ctrl)

	// Two fallback grades make a failure streak.
	if out.Reason != ReasonFailure {
		t.Fatalf("Reason = %v, want ReasonFailure", out.Reason)
	}
	for i, ex := range out.Transcript {
		if ex.Score != 1 {
			t.Errorf("exchange %d score = %d, want fallback 1", i, ex.Score)
		}
		if ex.Feedback != "Error: Could not evaluate the answer." {
			t.Errorf("exchange %d feedback = %q, want fallback sentence", i, ex.Feedback)
		}
	}
}

func TestController_OutOfRangeOracleScoreClamps(t *testing.T) {
	pool := testPool(t, 5, 5, 5)
	ctrl, _ := newTestController(t, pool, []int{9, 0, 0})

	out := runInterview(t, ctrl)

	if out.Transcript[0].Score != 5 {
		t.Errorf("score 9 recorded as %d, want 5", out.Transcript[0].Score)
	}
	if out.Transcript[1].Score != 1 {
		t.Errorf("score 0 recorded as %d, want 1", out.Transcript[1].Score)
	}
	if out.Reason != ReasonFailure {
		t.Errorf("Reason = %v, want ReasonFailure", out.Reason)
	}
}

func TestController_ReporterReceivesFullTranscript(t *testing.T) {
	pool := testPool(t, 5, 5, 5)
	ctrl, rep := newTestController(t, pool, []int{1, 1})

	out := runInterview(t, ctrl)

	if out.Report != "solid performance" {
		t.Errorf("Report = %q, want stub report", out.Report)
	}
	if len(rep.got) != 2 {
		t.Errorf("reporter saw %d exchanges, want 2", len(rep.got))
	}
}

func TestController_ReporterFailureDegradesToPlaceholder(t *testing.T) {
	pool := testPool(t, 5, 5, 5)
	rep := &stubReporter{err: errors.New("model offline")}
	ctrl := NewController(DefaultConfig(), NewSelector(pool, seededRNG()),
		&scriptedOracle{scores: []int{1, 1}}, rep, "Ada", "session-1")

	out := runInterview(t, ctrl)

	if !strings.Contains(out.Report, "An error occurred while generating the report") {
		t.Errorf("Report = %q, want placeholder", out.Report)
	}
	if out.Reason != ReasonFailure {
		t.Errorf("Reason = %v, want ReasonFailure despite reporter failure", out.Reason)
	}
}

func TestController_SingleQuestionPool(t *testing.T) {
	pool := testPool(t, 1, 0, 0)
	ctrl, _ := newTestController(t, pool, []int{3})

	out := runInterview(t, ctrl)
	if out.Reason != ReasonExhausted {
		t.Fatalf("Reason = %v, want ReasonExhausted", out.Reason)
	}
	if len(out.Transcript) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(out.Transcript))
	}
}

func TestController_InvalidStateTransitions(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t, 2, 0, 0)

	ctrl, _ := newTestController(t, pool, []int{3, 3})
	if _, err := ctrl.Submit(ctx, "answer"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Submit before Start: err = %v, want ErrInvalidState", err)
	}

	if _, err := ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := ctrl.Start(ctx); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Start: err = %v, want ErrInvalidState", err)
	}

	// Drive to completion, then Submit must fail.
	for {
		turn, err := ctrl.Submit(ctx, "answer")
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if turn.Outcome != nil {
			break
		}
	}
	if _, err := ctrl.Submit(ctx, "answer"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Submit after completion: err = %v, want ErrInvalidState", err)
	}
}
