package quizscreen

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/syllabus"
)

// grantAll always grants quota.
type grantAll struct{}

func (grantAll) TryConsumeSession(context.Context, auth.User, string, string) bool { return true }

// denyAll always denies quota.
type denyAll struct{}

func (denyAll) TryConsumeSession(context.Context, auth.User, string, string) bool { return false }

// recordedEvents captures appended quiz events.
type recordedEvents struct {
	events []store.QuizEventData
}

func (r *recordedEvents) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	r.events = append(r.events, data)
	return nil
}

func twoQuestionBackend() *api.Mock {
	mock := api.NewMock()
	mock.QuizResponses = []api.MockResult[api.QuizPayload]{
		{Value: api.QuizPayload{Questions: []api.QuizQuestion{
			{Question: "Value of g near Earth's surface?", Options: []string{"9.8 m/s²", "6.7 m/s²", "3.1 m/s²", "12 m/s²"}, CorrectAnswer: 0, Explanation: "g ≈ 9.8 m/s² at sea level."},
			{Question: "Gravitational force varies with distance as", Options: []string{"1/r", "1/r²", "r", "r²"}, CorrectAnswer: 1, Explanation: "Inverse-square law."},
		}}},
	}
	return mock
}

func mustRef(t *testing.T) syllabus.TopicRef {
	t.Helper()
	ref, err := syllabus.FindTopic("gravitation-basics")
	if err != nil {
		t.Fatalf("FindTopic: %v", err)
	}
	return ref
}

// ready runs the screen's generate command synchronously and applies
// the resulting message.
func ready(t *testing.T, q *QuizScreen) *QuizScreen {
	t.Helper()
	msg := q.generate()()
	s, _ := q.Update(msg)
	scr, ok := s.(*QuizScreen)
	if !ok {
		t.Fatalf("Update returned %T", s)
	}
	if scr.loading {
		t.Fatal("still loading after quizReadyMsg")
	}
	return scr
}

func key(k string) tea.KeyPressMsg {
	if k == "enter" {
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	return tea.KeyPressMsg{Code: rune(k[0]), Text: k}
}

func press(t *testing.T, q *QuizScreen, keys ...string) *QuizScreen {
	t.Helper()
	for _, k := range keys {
		s, _ := q.Update(key(k))
		var ok bool
		q, ok = s.(*QuizScreen)
		if !ok {
			t.Fatalf("Update returned %T", s)
		}
	}
	return q
}

func TestQuizFlowToSummary(t *testing.T) {
	events := &recordedEvents{}
	svc := quiz.NewService(twoQuestionBackend(), grantAll{}, events)
	user := auth.DemoUser()

	q := New(svc, user, mustRef(t))
	q = ready(t, q)

	view := q.View(100, 30)
	if !strings.Contains(view, "Q1 of 2") {
		t.Errorf("expected first question header, got:\n%s", view)
	}

	// Answer Q1 correctly (option A) and advance.
	q = press(t, q, "enter")
	if !q.started.Session.Revealed() {
		t.Fatal("answer should be revealed after enter")
	}
	view = q.View(100, 30)
	if !strings.Contains(view, "Correct!") {
		t.Errorf("expected correctness feedback, got:\n%s", view)
	}
	if !strings.Contains(view, "9.8") {
		t.Errorf("expected explanation context, got:\n%s", view)
	}
	q = press(t, q, "enter")

	// Answer Q2 incorrectly (option A, correct is B) and advance to summary.
	q = press(t, q, "enter", "enter")

	if q.summary == nil {
		t.Fatal("expected summary after last question")
	}
	if q.summary.Score != 1 || q.summary.Total != 2 {
		t.Errorf("summary = %d/%d, want 1/2", q.summary.Score, q.summary.Total)
	}
	view = q.View(100, 30)
	if !strings.Contains(view, "1 out of 2") {
		t.Errorf("expected score line, got:\n%s", view)
	}

	// started, 2 answers, completed.
	if len(events.events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events.events))
	}
	if events.events[0].Kind != "started" {
		t.Errorf("first event = %q, want started", events.events[0].Kind)
	}
	last := events.events[3]
	if last.Kind != "completed" || last.Score != 1 || last.Total != 2 {
		t.Errorf("completion event = %+v", last)
	}
}

func TestRestartFromSummary(t *testing.T) {
	events := &recordedEvents{}
	svc := quiz.NewService(twoQuestionBackend(), grantAll{}, events)

	q := New(svc, auth.DemoUser(), mustRef(t))
	q = ready(t, q)
	q = press(t, q, "enter", "enter", "enter", "enter")
	if q.summary == nil {
		t.Fatal("expected summary")
	}

	q = press(t, q, "r")
	if q.summary != nil {
		t.Error("summary should clear on restart")
	}
	if q.started.Session.Index() != 0 {
		t.Errorf("restart should return to question 0, got %d", q.started.Session.Index())
	}
	view := q.View(100, 30)
	if !strings.Contains(view, "Q1 of 2") {
		t.Errorf("expected first question after restart, got:\n%s", view)
	}
}

func TestQuotaDeniedShowsLimitMessage(t *testing.T) {
	events := &recordedEvents{}
	svc := quiz.NewService(twoQuestionBackend(), denyAll{}, events)

	q := New(svc, auth.DemoUser(), mustRef(t))
	q = ready(t, q)

	if !q.quotaHit {
		t.Fatal("expected quotaHit after denial")
	}
	view := q.View(100, 30)
	if !strings.Contains(view, "Daily limit reached") {
		t.Errorf("expected limit message, got:\n%s", view)
	}
	if len(events.events) != 0 {
		t.Errorf("denied generation must not log events, got %d", len(events.events))
	}
}

func TestGenerateFailureShowsErrorNotQuestion(t *testing.T) {
	svc := quiz.NewService(twoQuestionBackend(), grantAll{}, &recordedEvents{})

	q := New(svc, auth.DemoUser(), mustRef(t))
	s, _ := q.Update(quizReadyMsg{Err: errors.New("session init failed")})
	q = s.(*QuizScreen)

	if q.quotaHit {
		t.Error("a non-quota failure must not report a quota hit")
	}
	if !q.failed {
		t.Fatal("expected failed state after generation error")
	}

	// View must render the failure, never the question screen: there is
	// no session to render.
	view := q.View(100, 30)
	if !strings.Contains(view, "Couldn't start the quiz") {
		t.Errorf("expected failure message, got:\n%s", view)
	}

	// Keys are inert in the failed state.
	q = press(t, q, "enter", "r")
	if q.started != nil {
		t.Error("failed screen must not acquire a session from key presses")
	}
	if got := q.View(100, 30); !strings.Contains(got, "Couldn't start the quiz") {
		t.Errorf("failure message should persist, got:\n%s", got)
	}
}

func TestFallbackNoticeShown(t *testing.T) {
	// Empty mock: every call fails, so the sample set is used.
	svc := quiz.NewService(api.NewMock(), grantAll{}, &recordedEvents{})

	q := New(svc, auth.DemoUser(), mustRef(t))
	q = ready(t, q)

	if !q.started.Fallback {
		t.Fatal("expected fallback questions")
	}
	view := q.View(100, 30)
	if !strings.Contains(view, "Offline sample questions") {
		t.Errorf("expected offline notice, got:\n%s", view)
	}
}
