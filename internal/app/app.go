package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/content"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/router"
	"github.com/praxisprep/praxis/internal/screen"
	"github.com/praxisprep/praxis/internal/screens/home"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/ui/layout"
	"github.com/praxisprep/praxis/internal/usage"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	User    auth.User
	Backend api.Backend
	Tracker *usage.Tracker
	Content *content.Service
	Quiz    *quiz.Service
	Events  store.EventRepo
	Plans   store.PlanRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *usage.Tracker
	user    auth.User
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.User, opts.Tracker, opts.Backend, opts.Content, opts.Quiz, opts.Events, opts.Plans)
	return AppModel{
		router:  router.New(homeScreen),
		tracker: opts.Tracker,
		user:    opts.User,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	st := m.tracker.Status(context.Background(), m.user)
	header := layout.RenderHeader(title, layout.QuotaBadge{
		Used:    st.UsageCount,
		Limit:   st.UsageLimit,
		Premium: st.IsPremium,
	}, m.width)

	footerHints := m.footerHints(active)
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

// footerHints asks the active screen for custom hints, falling back to
// stack-position defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and flushes pending usage-log
// writes on exit.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	opts.Tracker.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
