package delivery

import (
	"context"
	"fmt"
	"io"

	"github.com/abhisek/intervue/internal/interview"
)

// ConsoleSink prints the report to a writer, normally stdout.
type ConsoleSink struct {
	W io.Writer
}

func (s *ConsoleSink) Deliver(_ context.Context, out *interview.Outcome) error {
	_, err := fmt.Fprintf(s.W, "# Interview Report: %s\n\n%s\n", out.Candidate, out.Report)
	if err != nil {
		return fmt.Errorf("write report to console: %w", err)
	}
	return nil
}
