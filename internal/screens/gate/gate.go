// Package gate implements the entry screen: an optional access code
// check followed by candidate name capture.
package gate

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervue/internal/router"
	"github.com/abhisek/intervue/internal/screen"
	"github.com/abhisek/intervue/internal/ui/components"
	"github.com/abhisek/intervue/internal/ui/layout"
	"github.com/abhisek/intervue/internal/ui/theme"
)

type phase int

const (
	phaseCode phase = iota
	phaseName
)

// GateScreen collects the access code and candidate name, then hands
// off to the interview.
type GateScreen struct {
	accessCode string
	next       func(candidate string) screen.Screen

	phase  phase
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*GateScreen)(nil)
var _ screen.KeyHintProvider = (*GateScreen)(nil)

// New creates the gate screen. An empty accessCode disables the code
// check; next builds the screen to replace the gate with once the
// candidate is admitted.
func New(accessCode string, next func(candidate string) screen.Screen) *GateScreen {
	s := &GateScreen{
		accessCode: accessCode,
		next:       next,
	}
	if accessCode == "" {
		s.phase = phaseName
		s.input = components.NewTextInput("Your full name...", 60)
	} else {
		s.phase = phaseCode
		s.input = components.NewTextInput("Access code...", 60)
		s.input.Model.EchoMode = textinput.EchoPassword
	}
	return s
}

func (s *GateScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GateScreen) Title() string {
	return "Welcome"
}

func (s *GateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *GateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s.handleSubmit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *GateScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		return s, nil
	}

	switch s.phase {
	case phaseCode:
		if value != s.accessCode {
			s.errMsg = "Incorrect access code."
			return s, s.input.Reset()
		}
		s.errMsg = ""
		s.phase = phaseName
		s.input = components.NewTextInput("Your full name...", 60)
		return s, s.input.Init()

	case phaseName:
		next := s.next(value)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *GateScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("AI Excel Mock Interviewer"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		"An adaptive interview: answer in your own words, the difficulty follows you."))
	b.WriteString("\n\n\n")

	var prompt string
	if s.phase == phaseCode {
		prompt = "Enter the access code to begin:"
	} else {
		prompt = "What is your name?"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}
