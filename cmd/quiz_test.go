package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/syllabus"
)

// grantAll always grants quota.
type grantAll struct{}

func (grantAll) TryConsumeSession(context.Context, auth.User, string, string) bool { return true }

// capturedEvents records appended quiz events.
type capturedEvents struct {
	events []store.QuizEventData
}

func (c *capturedEvents) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	c.events = append(c.events, data)
	return nil
}

func startedQuiz(t *testing.T, svc *quiz.Service) *quiz.Started {
	t.Helper()
	ref, err := syllabus.FindTopic("gravitation-basics")
	if err != nil {
		t.Fatalf("FindTopic: %v", err)
	}
	started, err := svc.Generate(context.Background(), auth.DemoUser(), ref)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return started
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

func TestQuizPromptRunsToSummary(t *testing.T) {
	events := &capturedEvents{}
	svc := quiz.NewService(twoQuestionBackend(), grantAll{}, events)
	started := startedQuiz(t, svc)

	// Q1 answered A (correct), then a stray letter that must reprompt,
	// then B for Q2 (correct).
	in := strings.NewReader("a\nz\nb\n")
	var out strings.Builder
	if err := runQuizPrompt(context.Background(), in, &out, svc, started); err != nil {
		t.Fatalf("runQuizPrompt: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Q1 of 2",
		"Correct!",
		"Pick a letter between A and D.",
		"Q2 of 2",
		"You scored 2 out of 2 (100%). Excellent work!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q, got:\n%s", want, got)
		}
	}

	// started, 2 answers, completed.
	if len(events.events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events.events))
	}
	last := events.events[3]
	if last.Kind != "completed" || last.Score != 2 || last.Total != 2 {
		t.Errorf("completion event = %+v", last)
	}
}

func TestQuizPromptWrongAnswerShowsCorrection(t *testing.T) {
	svc := quiz.NewService(twoQuestionBackend(), grantAll{}, &capturedEvents{})
	started := startedQuiz(t, svc)

	in := strings.NewReader("b\na\n")
	var out strings.Builder
	if err := runQuizPrompt(context.Background(), in, &out, svc, started); err != nil {
		t.Fatalf("runQuizPrompt: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Not quite. Answer: A) 9.8 m/s²") {
		t.Errorf("expected correction line, got:\n%s", got)
	}
	if !strings.Contains(got, "You scored 0 out of 2 (0%). Keep practicing!") {
		t.Errorf("expected zero-score summary, got:\n%s", got)
	}
}

func TestQuizPromptInputClosedEarly(t *testing.T) {
	svc := quiz.NewService(twoQuestionBackend(), grantAll{}, &capturedEvents{})
	started := startedQuiz(t, svc)

	in := strings.NewReader("a\n")
	var out strings.Builder
	err := runQuizPrompt(context.Background(), in, &out, svc, started)
	if err == nil {
		t.Fatal("expected an error when input ends mid-quiz")
	}
	if !strings.Contains(err.Error(), "input closed") {
		t.Errorf("err = %v", err)
	}
}
