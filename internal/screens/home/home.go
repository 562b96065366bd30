package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/content"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/router"
	"github.com/praxisprep/praxis/internal/screen"
	"github.com/praxisprep/praxis/internal/screens/explorer"
	"github.com/praxisprep/praxis/internal/screens/plannerchat"
	"github.com/praxisprep/praxis/internal/screens/tutorchat"
	"github.com/praxisprep/praxis/internal/screens/usageview"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/studyplan"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/tutor"
	"github.com/praxisprep/praxis/internal/ui/components"
	"github.com/praxisprep/praxis/internal/ui/theme"
	"github.com/praxisprep/praxis/internal/usage"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with its navigation wired to the domain
// services. Each visit to the tutor or planner starts a fresh chat
// session.
func New(user auth.User, tracker *usage.Tracker, backend api.Backend, contentSvc *content.Service, quizSvc *quiz.Service, events store.EventRepo, plans store.PlanRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "BROWSE SYLLABUS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: explorer.New(backend, contentSvc, quizSvc, user)}
			}
		}},
		{Label: "AI TUTOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				chat := tutor.NewChat(backend, tracker, events, user)
				return router.PushScreenMsg{Screen: tutorchat.New(chat)}
			}
		}},
		{Label: "STUDY PLANNER", Action: func() tea.Cmd {
			return func() tea.Msg {
				planner := studyplan.NewPlanner(backend, tracker, events, plans, user)
				return router.PushScreenMsg{Screen: plannerchat.New(planner)}
			}
		}},
		{Label: "USAGE & PLAN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: usageview.New(tracker, user)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("PRAXIS"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Your AI study partner for JEE"))
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(
		fmt.Sprintf("%d subjects · %d topics", len(syllabus.Subjects()), syllabus.TopicCount())))
	sections = append(sections, "")

	menu := h.menu.View()
	sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(menu))

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingTop(height / 6).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
