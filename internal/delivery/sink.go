// Package delivery writes finished interview outcomes to their
// destinations: the terminal, a Markdown file, a CSV log.
package delivery

import (
	"context"

	"github.com/abhisek/intervue/internal/interview"
)

// Sink receives a completed interview outcome. Sinks are independent;
// one failing must not stop the others, so callers fan out and collect
// errors.
type Sink interface {
	Deliver(ctx context.Context, out *interview.Outcome) error
}

// All delivers the outcome to every sink and returns the errors that
// occurred, in sink order.
func All(ctx context.Context, out *interview.Outcome, sinks ...Sink) []error {
	var errs []error
	for _, s := range sinks {
		if err := s.Deliver(ctx, out); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
