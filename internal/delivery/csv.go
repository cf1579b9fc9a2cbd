package delivery

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/intervue/internal/interview"
)

// CSVSink appends one summary row per interview to a CSV log, writing
// the header when the file is new.
type CSVSink struct {
	Path string
}

var csvHeader = []string{"session_id", "candidate", "started_at", "ended_at", "questions", "avg_score", "reason"}

func (s *CSVSink) Deliver(_ context.Context, out *interview.Outcome) error {
	_, statErr := os.Stat(s.Path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}

	avg := 0.0
	if len(out.Transcript) > 0 {
		total := 0
		for _, ex := range out.Transcript {
			total += ex.Score
		}
		avg = float64(total) / float64(len(out.Transcript))
	}

	row := []string{
		out.SessionID,
		out.Candidate,
		out.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		out.EndedAt.Format("2006-01-02T15:04:05Z07:00"),
		strconv.Itoa(len(out.Transcript)),
		strconv.FormatFloat(avg, 'f', 2, 64),
		out.Reason.String(),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv log: %w", err)
	}
	return nil
}
