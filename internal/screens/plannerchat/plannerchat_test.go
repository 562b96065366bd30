package plannerchat

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/studyplan"
)

// grantAll always grants quota.
type grantAll struct{}

func (grantAll) TryConsume(context.Context, auth.User, string) bool { return true }

// nopRecorder discards chat events.
type nopRecorder struct{}

func (nopRecorder) AppendChat(context.Context, store.ChatEventData) error { return nil }

func newScreen(mock *api.Mock) *PlannerScreen {
	planner := studyplan.NewPlanner(mock, grantAll{}, nopRecorder{}, nil, auth.DemoUser())
	return New(planner)
}

func TestGenerateNeedsContextFirst(t *testing.T) {
	s := newScreen(api.NewMock())

	// Only the welcome message exists, so generation must be refused.
	msg := s.generate()()
	updated, _ := s.Update(msg)
	s = updated.(*PlannerScreen)

	if !s.needContext {
		t.Fatal("expected needContext flag")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Tell me a bit more") {
		t.Errorf("expected more-context hint, got:\n%s", view)
	}
}

func TestGenerateShowsPlan(t *testing.T) {
	mock := api.NewMock()
	mock.PlanChats = []api.MockResult[string]{
		{Value: "Noted. Targeting JEE Advanced."},
		{Value: "Got it, four months to go."},
	}
	s := newScreen(mock)

	// Two chat turns build enough context (welcome + 4 messages).
	for _, text := range []string{"target JEE Advanced", "exam in four months"} {
		msg := s.send(text)()
		updated, _ := s.Update(msg)
		s = updated.(*PlannerScreen)
	}

	// Empty plan queue: the fallback 4-week plan is generated.
	msg := s.generate()()
	updated, _ := s.Update(msg)
	s = updated.(*PlannerScreen)

	if !s.showPlan {
		t.Fatal("expected plan view after generation")
	}
	view := s.View(100, 60)
	if !strings.Contains(view, "Week 1") {
		t.Errorf("expected weekly schedule, got:\n%s", view)
	}

	// Tab returns to the chat.
	updated, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s = updated.(*PlannerScreen)
	if s.showPlan {
		t.Error("tab should return to chat view")
	}
}
