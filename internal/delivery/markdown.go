package delivery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/intervue/internal/interview"
)

// MarkdownFileSink writes the report plus a transcript appendix to a
// Markdown file under Dir, named after the candidate and session.
type MarkdownFileSink struct {
	Dir string
}

// Path returns the file the outcome would be written to.
func (s *MarkdownFileSink) Path(out *interview.Outcome) string {
	name := fmt.Sprintf("%s-%s.md", slug(out.Candidate), out.SessionID)
	return filepath.Join(s.Dir, name)
}

func (s *MarkdownFileSink) Deliver(_ context.Context, out *interview.Outcome) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Interview Report: %s\n\n", out.Candidate)
	fmt.Fprintf(&b, "- Session: %s\n", out.SessionID)
	fmt.Fprintf(&b, "- Started: %s\n", out.StartedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "- Ended: %s\n", out.EndedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "- Questions: %d\n\n", len(out.Transcript))
	b.WriteString(out.Report)
	b.WriteString("\n\n## Transcript\n\n")
	for i, ex := range out.Transcript {
		fmt.Fprintf(&b, "### Q%d (%s, %s)\n\n", i+1, ex.Topic, ex.Difficulty)
		fmt.Fprintf(&b, "**Question:** %s\n\n", ex.Question)
		fmt.Fprintf(&b, "**Answer:** %s\n\n", ex.Answer)
		fmt.Fprintf(&b, "**Score:** %d/5 — %s\n\n", ex.Score, ex.Feedback)
	}

	if err := os.WriteFile(s.Path(out), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

// slug lowercases the candidate name and replaces anything that isn't a
// letter or digit with a dash.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "candidate"
	}
	return out
}
