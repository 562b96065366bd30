package contentview

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/content"
	"github.com/praxisprep/praxis/internal/router"
	"github.com/praxisprep/praxis/internal/screens/quizscreen"
	"github.com/praxisprep/praxis/internal/syllabus"
)

// grantAll always grants quota.
type grantAll struct{}

func (grantAll) TryConsume(context.Context, auth.User, string) bool { return true }

// denyAll always denies quota.
type denyAll struct{}

func (denyAll) TryConsume(context.Context, auth.User, string) bool { return false }

func mustRef(t *testing.T) syllabus.TopicRef {
	t.Helper()
	ref, err := syllabus.FindTopic("gravitation-basics")
	if err != nil {
		t.Fatalf("FindTopic: %v", err)
	}
	return ref
}

func ready(t *testing.T, c *ContentScreen) *ContentScreen {
	t.Helper()
	msg := c.generate()()
	s, _ := c.Update(msg)
	scr, ok := s.(*ContentScreen)
	if !ok {
		t.Fatalf("Update returned %T", s)
	}
	return scr
}

func press(t *testing.T, c *ContentScreen, k string) *ContentScreen {
	t.Helper()
	var msg tea.KeyPressMsg
	if k == "tab" {
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	} else {
		msg = tea.KeyPressMsg{Code: rune(k[0]), Text: k}
	}
	s, _ := c.Update(msg)
	scr, ok := s.(*ContentScreen)
	if !ok {
		t.Fatalf("Update returned %T", s)
	}
	return scr
}

func TestTabSwitchesMode(t *testing.T) {
	mock := api.NewMock()
	mock.ContentResponses = []api.MockResult[api.ContentPayload]{
		{Value: api.ContentPayload{Learn: "the learn notes", Revise: "the revise notes"}},
	}
	svc := content.NewService(mock, grantAll{}, nil)

	c := New(svc, nil, auth.DemoUser(), mustRef(t))
	c = ready(t, c)

	view := c.View(100, 30)
	if !strings.Contains(view, "the learn notes") {
		t.Errorf("expected learn notes first, got:\n%s", view)
	}

	c = press(t, c, "tab")
	view = c.View(100, 30)
	if !strings.Contains(view, "the revise notes") {
		t.Errorf("expected revise notes after tab, got:\n%s", view)
	}

	c = press(t, c, "tab")
	view = c.View(100, 30)
	if !strings.Contains(view, "the learn notes") {
		t.Errorf("expected learn notes after second tab, got:\n%s", view)
	}
}

func TestQuizKeyReplacesWithQuizScreen(t *testing.T) {
	mock := api.NewMock()
	mock.ContentResponses = []api.MockResult[api.ContentPayload]{
		{Value: api.ContentPayload{Learn: "notes", Revise: "recap"}},
	}
	svc := content.NewService(mock, grantAll{}, nil)

	c := New(svc, nil, auth.DemoUser(), mustRef(t))
	c = ready(t, c)

	s, cmd := c.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if _, ok := s.(*ContentScreen); !ok {
		t.Fatalf("Update returned %T", s)
	}
	if cmd == nil {
		t.Fatal("expected a navigation command from the quiz key")
	}

	// The notes hand off in place so Esc from the quiz lands back on
	// the explorer.
	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*quizscreen.QuizScreen); !ok {
		t.Fatalf("expected a quiz screen, got %T", rep.Screen)
	}
}

func TestQuotaDeniedShowsLimitMessage(t *testing.T) {
	svc := content.NewService(api.NewMock(), denyAll{}, nil)

	c := New(svc, nil, auth.DemoUser(), mustRef(t))
	c = ready(t, c)

	if !c.quotaHit {
		t.Fatal("expected quotaHit after denial")
	}
	view := c.View(100, 30)
	if !strings.Contains(view, "Daily limit reached") {
		t.Errorf("expected limit message, got:\n%s", view)
	}
}

func TestFallbackNoticeShown(t *testing.T) {
	// Empty mock: the backend call fails, so offline notes are shown.
	svc := content.NewService(api.NewMock(), grantAll{}, nil)

	c := New(svc, nil, auth.DemoUser(), mustRef(t))
	c = ready(t, c)

	view := c.View(100, 40)
	if !strings.Contains(view, "Offline notes shown") {
		t.Errorf("expected offline notice, got:\n%s", view)
	}
}

func TestWrapRespectsWidth(t *testing.T) {
	lines := wrap("one two three four five six seven", 12)
	for _, l := range lines {
		if len(l) > 12 {
			t.Errorf("line %q exceeds width 12", l)
		}
	}
	if len(lines) < 2 {
		t.Errorf("expected wrapping into multiple lines, got %d", len(lines))
	}
}
