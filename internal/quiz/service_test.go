package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/usage"
)

// grantAll grants every consumption and records the session IDs it saw.
type grantAll struct {
	sessions []string
}

func (g *grantAll) TryConsumeSession(_ context.Context, _ auth.User, _, sessionID string) bool {
	g.sessions = append(g.sessions, sessionID)
	return true
}

// denyAll denies every consumption.
type denyAll struct{ calls int }

func (d *denyAll) TryConsumeSession(context.Context, auth.User, string, string) bool {
	d.calls++
	return false
}

// recordedEvents collects appended quiz events.
type recordedEvents struct {
	events []store.QuizEventData
	err    error
}

func (r *recordedEvents) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func testRef() syllabus.TopicRef {
	ref, err := syllabus.FindTopic("gravitation-basics")
	if err != nil {
		panic(err)
	}
	return ref
}

func validPayload() api.QuizPayload {
	return api.QuizPayload{Questions: []api.QuizQuestion{
		{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2, Explanation: "e1"},
		{Question: "q2", Options: []string{"a", "b"}, CorrectAnswer: 0, Explanation: "e2"},
	}}
}

func TestGenerateFromBackend(t *testing.T) {
	mock := api.NewMock()
	mock.QuizResponses = []api.MockResult[api.QuizPayload]{{Value: validPayload()}}
	quota := &grantAll{}
	events := &recordedEvents{}

	svc := NewService(mock, quota, events)
	started, err := svc.Generate(context.Background(), auth.DemoUser(), testRef())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if started.Fallback {
		t.Error("unexpected fallback with a healthy backend")
	}
	if started.Session.Len() != 2 {
		t.Errorf("len = %d, want 2", started.Session.Len())
	}
	if started.Session.Current().CorrectIndex != 2 {
		t.Errorf("correct index = %d, want 2", started.Session.Current().CorrectIndex)
	}
	if started.SessionID == "" {
		t.Error("expected a session id")
	}

	// Quota charged once, with the session attached.
	if len(quota.sessions) != 1 || quota.sessions[0] != started.SessionID {
		t.Errorf("quota sessions = %v, want [%s]", quota.sessions, started.SessionID)
	}

	// Backend asked for the right topic.
	if len(mock.QuizCalls) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(mock.QuizCalls))
	}
	req := mock.QuizCalls[0]
	if req.Subject != "Physics" || req.Topic != "Newton's Law of Gravitation" {
		t.Errorf("request = %+v, want Physics / Newton's Law of Gravitation", req)
	}

	// A started event was logged.
	if len(events.events) != 1 || events.events[0].Kind != "started" {
		t.Fatalf("events = %+v, want one started", events.events)
	}
	if events.events[0].SessionID != started.SessionID {
		t.Error("started event carries wrong session id")
	}
}

func TestGenerateQuotaDenied(t *testing.T) {
	mock := api.NewMock()
	mock.QuizResponses = []api.MockResult[api.QuizPayload]{{Value: validPayload()}}
	quota := &denyAll{}

	svc := NewService(mock, quota, nil)
	_, err := svc.Generate(context.Background(), auth.DemoUser(), testRef())
	if !errors.Is(err, usage.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}

	// Denied before the backend was touched.
	if len(mock.QuizCalls) != 0 {
		t.Errorf("backend calls = %d, want 0", len(mock.QuizCalls))
	}
}

func TestGenerateFallsBackOnBackendError(t *testing.T) {
	mock := api.NewMock() // empty queue: every call errors

	svc := NewService(mock, &grantAll{}, nil)
	started, err := svc.Generate(context.Background(), auth.DemoUser(), testRef())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !started.Fallback {
		t.Error("expected fallback")
	}
	if started.Session.Len() == 0 {
		t.Error("fallback session must be playable")
	}
}

func TestGenerateFallsBackOnInvalidQuestions(t *testing.T) {
	tests := []struct {
		name    string
		payload api.QuizPayload
	}{
		{"empty", api.QuizPayload{}},
		{"one option", api.QuizPayload{Questions: []api.QuizQuestion{
			{Question: "q", Options: []string{"a"}, CorrectAnswer: 0},
		}}},
		{"index out of range", api.QuizPayload{Questions: []api.QuizQuestion{
			{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 5},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := api.NewMock()
			mock.QuizResponses = []api.MockResult[api.QuizPayload]{{Value: tt.payload}}

			svc := NewService(mock, &grantAll{}, nil)
			started, err := svc.Generate(context.Background(), auth.DemoUser(), testRef())
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if !started.Fallback {
				t.Error("expected fallback")
			}
		})
	}
}

func TestRecordAnswerAndCompletion(t *testing.T) {
	events := &recordedEvents{}
	svc := NewService(api.NewMock(), &grantAll{}, events)
	ctx := context.Background()

	svc.RecordAnswer(ctx, "s1", 0, true)
	svc.RecordAnswer(ctx, "s1", 1, false)
	svc.RecordCompletion(ctx, "s1", Summary{Score: 1, Total: 2})

	if len(events.events) != 3 {
		t.Fatalf("events = %d, want 3", len(events.events))
	}
	if events.events[0].Kind != "answered" || !events.events[0].Correct {
		t.Errorf("event 0 = %+v", events.events[0])
	}
	if events.events[2].Kind != "completed" || events.events[2].Score != 1 || events.events[2].Total != 2 {
		t.Errorf("event 2 = %+v", events.events[2])
	}
}

func TestRecorderFailureDoesNotBlockGeneration(t *testing.T) {
	mock := api.NewMock()
	mock.QuizResponses = []api.MockResult[api.QuizPayload]{{Value: validPayload()}}
	events := &recordedEvents{err: errors.New("disk full")}

	svc := NewService(mock, &grantAll{}, events)
	started, err := svc.Generate(context.Background(), auth.DemoUser(), testRef())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if started.Session == nil {
		t.Fatal("expected a session despite recorder failure")
	}
}
