// Package report implements the final screen: the candidate's written
// performance report.
package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	iv "github.com/abhisek/intervue/internal/interview"
	"github.com/abhisek/intervue/internal/screen"
	"github.com/abhisek/intervue/internal/ui/layout"
	"github.com/abhisek/intervue/internal/ui/theme"
)

// ReportScreen displays the interview outcome and report.
type ReportScreen struct {
	outcome *iv.Outcome
	offset  int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates the report screen for a completed interview.
func New(outcome *iv.Outcome) *ReportScreen {
	return &ReportScreen{outcome: outcome}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Performance Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Q", Description: "Finish"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "q", "enter", "esc":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	out := s.outcome
	if out == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Interview complete"))
	b.WriteString("\n")

	avg := 0.0
	if len(out.Transcript) > 0 {
		total := 0
		for _, ex := range out.Transcript {
			total += ex.Score
		}
		avg = float64(total) / float64(len(out.Transcript))
	}
	stats := fmt.Sprintf("%s   questions: %d   average score: %.1f/5",
		out.Candidate, len(out.Transcript), avg)
	b.WriteString(theme.Subtitle.Width(width).Render(stats))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Render(out.Report)

	lines := strings.Split(body, "\n")
	visible := height - 5
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := s.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	window := strings.Join(lines[s.offset:end], "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, window))

	return b.String()
}
