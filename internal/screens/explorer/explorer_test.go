package explorer

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/router"
	"github.com/praxisprep/praxis/internal/syllabus"
)

func press(t *testing.T, e *ExplorerScreen, keys ...string) tea.Cmd {
	t.Helper()
	var last tea.Cmd
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "left":
			msg = tea.KeyPressMsg{Code: tea.KeyLeft}
		default:
			msg = tea.KeyPressMsg{Code: rune(k[0]), Text: k}
		}
		s, cmd := e.Update(msg)
		var ok bool
		e, ok = s.(*ExplorerScreen)
		if !ok {
			t.Fatalf("Update returned %T", s)
		}
		last = cmd
	}
	return last
}

func TestStartsAtSubjects(t *testing.T) {
	e := New(nil, nil, nil, auth.DemoUser())

	view := e.View(100, 30)
	for _, s := range syllabus.Subjects() {
		if !strings.Contains(view, s.Name) {
			t.Errorf("subject %q missing from view", s.Name)
		}
	}
}

func TestDrillDownAndBack(t *testing.T) {
	e := New(nil, nil, nil, auth.DemoUser())

	press(t, e, "enter")
	if e.depth != levelChapter {
		t.Fatalf("depth = %d, want chapter level", e.depth)
	}
	view := e.View(100, 30)
	first := syllabus.Subjects()[0]
	if !strings.Contains(view, first.Chapters[0].Name) {
		t.Errorf("expected first chapter of %s in view", first.Name)
	}

	press(t, e, "enter")
	if e.depth != levelTopic {
		t.Fatalf("depth = %d, want topic level", e.depth)
	}

	press(t, e, "left")
	if e.depth != levelChapter {
		t.Errorf("depth = %d after left, want chapter level", e.depth)
	}
	press(t, e, "left")
	if e.depth != levelSubject {
		t.Errorf("depth = %d after second left, want subject level", e.depth)
	}
}

func TestCursorResetOnDrill(t *testing.T) {
	e := New(nil, nil, nil, auth.DemoUser())

	press(t, e, "j", "enter")
	if e.cursor[levelChapter] != 0 {
		t.Errorf("chapter cursor = %d, want 0 after drill", e.cursor[levelChapter])
	}
	if e.currentSubject().ID != syllabus.Subjects()[1].ID {
		t.Errorf("expected second subject selected")
	}
}

func TestTopicEnterPushesContentScreen(t *testing.T) {
	e := New(nil, nil, nil, auth.DemoUser())

	cmd := press(t, e, "enter", "enter", "enter")
	if cmd == nil {
		t.Fatal("expected push command on topic select")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
}

func TestBackendSyllabusReplacesSeed(t *testing.T) {
	mock := api.NewMock()
	mock.SyllabusResponses = []api.MockResult[[]api.SyllabusSubject]{
		{Value: []api.SyllabusSubject{{
			ID: "astro", Name: "Astronomy",
			Chapters: []api.SyllabusChapter{{
				ID: "stars", Name: "Stellar Physics", Class: 12,
				Topics: []api.SyllabusTopic{{ID: "fusion-basics", Name: "Stellar Fusion"}},
			}},
		}}},
	}

	e := New(mock, nil, nil, auth.DemoUser())
	s, _ := e.Update(e.fetchSyllabus()())
	e = s.(*ExplorerScreen)

	view := e.View(100, 30)
	if !strings.Contains(view, "Astronomy") {
		t.Errorf("expected backend subject in view, got:\n%s", view)
	}
	if mock.SyllabusCalls != 1 {
		t.Errorf("SyllabusCalls = %d, want 1", mock.SyllabusCalls)
	}

	// Drilling into the backend tree must produce a ref from its names.
	cmd := press(t, e, "enter", "enter", "enter")
	if cmd == nil {
		t.Fatal("expected push command on topic select")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg from backend-tree topic")
	}
}

func TestBackendSyllabusFailureKeepsSeed(t *testing.T) {
	// Empty mock: the fetch fails and the seed tree stays on screen.
	mock := api.NewMock()

	e := New(mock, nil, nil, auth.DemoUser())
	s, _ := e.Update(e.fetchSyllabus()())
	e = s.(*ExplorerScreen)

	view := e.View(100, 30)
	for _, sub := range syllabus.Subjects() {
		if !strings.Contains(view, sub.Name) {
			t.Errorf("seed subject %q missing after failed fetch", sub.Name)
		}
	}
}

func TestBackendSyllabusIgnoredWhileDrilledIn(t *testing.T) {
	mock := api.NewMock()
	mock.SyllabusResponses = []api.MockResult[[]api.SyllabusSubject]{
		{Value: []api.SyllabusSubject{{
			ID: "astro", Name: "Astronomy",
			Chapters: []api.SyllabusChapter{{
				ID: "stars", Name: "Stellar Physics", Class: 12,
				Topics: []api.SyllabusTopic{{ID: "fusion-basics", Name: "Stellar Fusion"}},
			}},
		}}},
	}

	e := New(mock, nil, nil, auth.DemoUser())
	press(t, e, "enter") // drill into chapters before the fetch lands
	s, _ := e.Update(e.fetchSyllabus()())
	e = s.(*ExplorerScreen)

	if e.depth != levelChapter {
		t.Errorf("depth = %d, want chapter level", e.depth)
	}
	first := syllabus.Subjects()[0]
	if e.currentSubject().ID != first.ID {
		t.Errorf("drilled-in subject changed to %q", e.currentSubject().ID)
	}
}
