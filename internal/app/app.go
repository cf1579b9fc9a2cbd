// Package app assembles the root Bubble Tea model and wires the
// screens to the interview engine.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"

	"github.com/abhisek/intervue/internal/bank"
	"github.com/abhisek/intervue/internal/delivery"
	iv "github.com/abhisek/intervue/internal/interview"
	"github.com/abhisek/intervue/internal/router"
	"github.com/abhisek/intervue/internal/screen"
	"github.com/abhisek/intervue/internal/screens/gate"
	interviewscreen "github.com/abhisek/intervue/internal/screens/interview"
	"github.com/abhisek/intervue/internal/store"
	"github.com/abhisek/intervue/internal/ui/layout"
)

// Deps holds everything the TUI needs to run one interview.
type Deps struct {
	Pool       *bank.Pool
	Config     iv.Config
	Oracle     iv.Oracle
	Reporter   iv.Reporter
	Repo       store.InterviewRepo // nil disables persistence
	Sinks      []delivery.Sink
	AccessCode string // empty disables the gate's code check
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the AppModel starting at the gate screen.
func newAppModel(deps Deps) AppModel {
	gateScreen := gate.New(deps.AccessCode, func(candidate string) screen.Screen {
		selector := iv.NewSelector(deps.Pool, nil)
		ctrl := iv.NewController(deps.Config, selector, deps.Oracle, deps.Reporter,
			candidate, uuid.New().String())
		return interviewscreen.New(ctrl, deps.Repo, deps.Sinks...)
	})
	return AppModel{
		router: router.New(gateScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var candidate, progress string
	if hp, ok := active.(screen.HeaderInfoProvider); ok {
		candidate, progress = hp.HeaderInfo()
	}
	header := layout.RenderHeader(title, candidate, progress, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kh, ok := active.(screen.KeyHintProvider); ok {
		if hints := kh.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
