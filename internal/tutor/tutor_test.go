package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/usage"
)

type grantAll struct{ sessions []string }

func (g *grantAll) TryConsumeSession(_ context.Context, _ auth.User, _, sessionID string) bool {
	g.sessions = append(g.sessions, sessionID)
	return true
}

type denyAll struct{}

func (denyAll) TryConsumeSession(context.Context, auth.User, string, string) bool {
	return false
}

type recordedChats struct {
	events []store.ChatEventData
}

func (r *recordedChats) AppendChat(_ context.Context, data store.ChatEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestNewChatSeedsWelcome(t *testing.T) {
	c := NewChat(api.NewMock(), &grantAll{}, nil, auth.DemoUser())

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].Role != RoleAssistant {
		t.Errorf("role = %q, want assistant", msgs[0].Role)
	}
	if !strings.Contains(msgs[0].Content, "Welcome to Deep Study Mode") {
		t.Error("welcome message missing")
	}
	if c.SessionID() == "" {
		t.Error("expected a session id")
	}
}

func TestSendRoundTrip(t *testing.T) {
	mock := api.NewMock()
	mock.ChatResponses = []api.MockResult[string]{{Value: "Torque is r cross F."}}
	quota := &grantAll{}

	c := NewChat(mock, quota, nil, auth.DemoUser())
	reply, err := c.Send(context.Background(), "what is torque?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if reply.Role != RoleAssistant || reply.Content != "Torque is r cross F." {
		t.Errorf("reply = %+v", reply)
	}
	if len(c.Messages()) != 3 { // welcome, user, assistant
		t.Errorf("transcript = %d messages, want 3", len(c.Messages()))
	}

	// Quota charged once with this chat's session.
	if len(quota.sessions) != 1 || quota.sessions[0] != c.SessionID() {
		t.Errorf("quota sessions = %v", quota.sessions)
	}

	// The request carried the student message and prior context.
	if len(mock.ChatCalls) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(mock.ChatCalls))
	}
	req := mock.ChatCalls[0]
	if req.Message != "what is torque?" {
		t.Errorf("message = %q", req.Message)
	}
	if req.SessionID != c.SessionID() {
		t.Error("request session id mismatch")
	}
	if len(req.Context) != 1 || req.Context[0].Type != "assistant" {
		t.Errorf("context = %+v, want the welcome message", req.Context)
	}
}

func TestSendQuotaDenied(t *testing.T) {
	mock := api.NewMock()
	c := NewChat(mock, denyAll{}, nil, auth.DemoUser())

	_, err := c.Send(context.Background(), "help")
	if !errors.Is(err, usage.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}

	// Denied turn leaves the transcript and backend untouched.
	if len(c.Messages()) != 1 {
		t.Errorf("transcript = %d messages, want 1", len(c.Messages()))
	}
	if len(mock.ChatCalls) != 0 {
		t.Errorf("backend calls = %d, want 0", len(mock.ChatCalls))
	}
}

func TestSendFallbackOnBackendError(t *testing.T) {
	mock := api.NewMock() // empty queue: chat errors

	c := NewChat(mock, &grantAll{}, nil, auth.DemoUser())

	tests := []struct {
		input string
		want  string
	}{
		{"explain physics please", "Physics Help"},
		{"organic chemistry mechanisms", "Chemistry Help"},
		{"maths integrals", "Mathematics Help"},
		{"I need a study plan", "Study Plan Creation"},
		{"random question", "I'm Here to Help"},
	}
	for _, tt := range tests {
		reply, err := c.Send(context.Background(), tt.input)
		if err != nil {
			t.Fatalf("send %q: %v", tt.input, err)
		}
		if !strings.Contains(reply.Content, tt.want) {
			t.Errorf("reply to %q missing %q", tt.input, tt.want)
		}
	}
}

func TestContextWindowCapped(t *testing.T) {
	mock := api.NewMock()
	for i := 0; i < 10; i++ {
		mock.ChatResponses = append(mock.ChatResponses, api.MockResult[string]{Value: "ok"})
	}

	c := NewChat(mock, &grantAll{}, nil, auth.DemoUser())
	for i := 0; i < 5; i++ {
		if _, err := c.Send(context.Background(), "turn"); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	last := mock.ChatCalls[len(mock.ChatCalls)-1]
	if len(last.Context) != 5 {
		t.Errorf("context = %d messages, want 5", len(last.Context))
	}
}

func TestSolveImage(t *testing.T) {
	mock := api.NewMock()
	c := NewChat(mock, &grantAll{}, nil, auth.DemoUser())

	// Backend unreachable: the canned image reply comes back.
	reply, err := c.SolveImage(context.Background(), "aW1hZ2U=", "")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(reply.Content, "uploaded an image") {
		t.Error("expected the image fallback reply")
	}

	// An empty question gets the default prompt.
	msgs := c.Messages()
	user := msgs[len(msgs)-2]
	if user.Content != "Please solve this problem for me." {
		t.Errorf("user message = %q", user.Content)
	}
}

func TestTranscriptRecorded(t *testing.T) {
	mock := api.NewMock()
	mock.ChatResponses = []api.MockResult[string]{{Value: "answer"}}
	rec := &recordedChats{}

	c := NewChat(mock, &grantAll{}, rec, auth.DemoUser())
	if _, err := c.Send(context.Background(), "question"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(rec.events) != 3 { // welcome, user, assistant
		t.Fatalf("recorded = %d, want 3", len(rec.events))
	}
	for _, e := range rec.events {
		if e.Flow != "tutor" || e.SessionID != c.SessionID() {
			t.Errorf("event = %+v", e)
		}
	}
	if rec.events[1].Role != "user" || rec.events[1].Content != "question" {
		t.Errorf("user event = %+v", rec.events[1])
	}
}
