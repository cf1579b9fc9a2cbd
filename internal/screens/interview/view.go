package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervue/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.quitConfirm:
		return renderQuitConfirm(width)
	case s.finishing:
		return renderCentered(width, theme.Hint.Render("Writing your performance report..."))
	case s.showingFeedback:
		return s.renderFeedback(width)
	case s.grading:
		return s.renderQuestion(width, true)
	case s.question == nil:
		return renderCentered(width, theme.Hint.Render("Preparing your first question..."))
	default:
		return s.renderQuestion(width, false)
	}
}

// renderQuestion shows the current question with the answer input, or a
// grading notice while the answer is being scored.
func (s *InterviewScreen) renderQuestion(width int, grading bool) string {
	q := s.question
	state := s.ctrl.State()

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Topic)) +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("   %s   question %d", q.Difficulty, len(state.Transcript)+1))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionBlock := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionBlock))
	b.WriteString("\n\n")

	if grading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Evaluating your answer..."))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(min(width-8, 76)).
			Render("Answer: " + s.input.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answerLine))
	}

	return b.String()
}

// renderFeedback shows the grade for the answer just submitted.
func (s *InterviewScreen) renderFeedback(width int) string {
	ex := s.lastExchange
	if ex == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	scoreStyle := theme.Pass
	if ex.Score <= 2 {
		scoreStyle = theme.Fail
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("Score: %d/5", ex.Score))))
	b.WriteString("\n\n")

	feedback := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(ex.Feedback)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, feedback))
	b.WriteString("\n\n")

	next := "Press any key for the next question"
	if s.pendingOutcome != nil {
		next = "That was the last question. Press any key for your report"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(next))

	return b.String()
}

func renderQuitConfirm(width int) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Leave the interview? Your progress will not be graded.\n\n(y/n)")
}

func renderError(width int, msg string) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("Something went wrong:\n\n"+msg+"\n\nPress any key to go back")
}

func renderCentered(width int, content string) string {
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
