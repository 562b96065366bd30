package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/praxisprep/praxis/internal/screen"
)

// fakeScreen stands in for an app screen (home, explorer, notes, quiz).
type fakeScreen struct {
	name    string
	initRan bool
	lastMsg tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}
func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestPushRunsInitAndActivates(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	explorer := &fakeScreen{name: "explorer"}
	r.Push(explorer)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "explorer" {
		t.Errorf("active = %q, want explorer", r.Active().Title())
	}
	if !explorer.initRan {
		t.Error("pushed screen's Init should run")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	r.Push(&fakeScreen{name: "explorer"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
	if r.Active() == nil {
		t.Fatal("active screen lost after pop at bottom")
	}
}

func TestReplaceRunsInitAndKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	notes := &fakeScreen{name: "notes"}
	r.Push(notes)

	quiz := &fakeScreen{name: "quiz"}
	r.Replace(quiz)

	if r.Depth() != 2 {
		t.Errorf("depth = %d after replace, want 2", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("replacement screen's Init should run")
	}
}

// A topic's notes hand off to its quiz in place; Esc from the quiz must
// then land on whatever sat under the notes, not on the notes.
func TestNotesToQuizHandoff(t *testing.T) {
	r := New(&fakeScreen{name: "explorer"})
	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "notes"}})

	quiz := &fakeScreen{name: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: quiz})

	if r.Depth() != 2 {
		t.Errorf("depth = %d after handoff, want 2", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("quiz Init should run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "explorer" {
		t.Errorf("after Esc active = %q, want explorer", r.Active().Title())
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	explorer := &fakeScreen{name: "explorer"}
	r.Push(explorer)

	msg := tea.KeyPressMsg{Code: 'j', Text: "j"}
	r.Update(msg)

	if explorer.lastMsg == nil {
		t.Error("active screen should receive the message")
	}
	if home.lastMsg != nil {
		t.Error("covered screen must not receive messages")
	}
}
