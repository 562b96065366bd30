package studyplan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/usage"
)

type grantAll struct{ features []string }

func (g *grantAll) TryConsume(_ context.Context, _ auth.User, feature string) bool {
	g.features = append(g.features, feature)
	return true
}

type denyAll struct{}

func (denyAll) TryConsume(context.Context, auth.User, string) bool { return false }

// memPlans is a map-backed Plans for tests.
type memPlans struct {
	saved []store.PlanRecord
}

func (m *memPlans) Save(_ context.Context, rec store.PlanRecord) error {
	m.saved = append(m.saved, rec)
	return nil
}

func (m *memPlans) Latest(context.Context, string) (*store.PlanRecord, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	rec := m.saved[len(m.saved)-1]
	return &rec, nil
}

func TestNewPlannerSeedsWelcome(t *testing.T) {
	p := NewPlanner(api.NewMock(), &grantAll{}, nil, nil, auth.DemoUser())

	msgs := p.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0].Content, "Welcome to Deep Study Plan") {
		t.Error("welcome message missing")
	}
	if p.CurrentPlan() != nil {
		t.Error("fresh session must have no plan")
	}
}

func TestSendAttachesCurrentPlan(t *testing.T) {
	mock := api.NewMock()
	mock.PlanChats = []api.MockResult[string]{
		{Value: "tell me more"},
		{Value: "adjusted"},
	}
	mock.Plans = []api.MockResult[api.StudyPlan]{
		{Value: api.StudyPlan{
			ID:       "p1",
			Title:    "Plan",
			Schedule: []api.WeekPlan{{Week: 1, Topics: []string{"x"}}},
		}},
	}
	quota := &grantAll{}

	p := NewPlanner(mock, quota, nil, nil, auth.DemoUser())
	ctx := context.Background()

	if _, err := p.Send(ctx, "I have 6 months"); err != nil {
		t.Fatalf("send: %v", err)
	}
	// First turn carries no plan.
	if mock.PlanChatReqs[0].CurrentPlan != nil {
		t.Error("first turn should carry no plan")
	}

	if _, err := p.Send(ctx, "focus on physics"); err != nil {
		t.Fatalf("send 2: %v", err)
	}
	if _, err := p.GeneratePlan(ctx); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := p.Send(ctx, "make week 1 lighter"); err != nil {
		t.Fatalf("send 3: %v", err)
	}

	last := mock.PlanChatReqs[len(mock.PlanChatReqs)-1]
	if last.CurrentPlan == nil || last.CurrentPlan.ID != "p1" {
		t.Error("turn after generation must carry the current plan")
	}

	// Each action charged its own feature.
	want := []string{FeatureChat, FeatureChat, FeatureGenerate, FeatureChat}
	if len(quota.features) != len(want) {
		t.Fatalf("features = %v, want %v", quota.features, want)
	}
	for i := range want {
		if quota.features[i] != want[i] {
			t.Errorf("feature[%d] = %q, want %q", i, quota.features[i], want[i])
		}
	}
}

func TestSendQuotaDenied(t *testing.T) {
	p := NewPlanner(api.NewMock(), denyAll{}, nil, nil, auth.DemoUser())

	_, err := p.Send(context.Background(), "hello")
	if !errors.Is(err, usage.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}
	if len(p.Messages()) != 1 {
		t.Errorf("transcript = %d messages, want 1", len(p.Messages()))
	}
}

func TestSendFallbackReplies(t *testing.T) {
	mock := api.NewMock() // empty queue: every chat errors
	p := NewPlanner(mock, &grantAll{}, nil, nil, auth.DemoUser())

	tests := []struct {
		input string
		want  string
	}{
		{"how should I schedule my day", "Time Management"},
		{"physics feels difficult", "Addressing Weak Areas"},
		{"my target rank is 500", "Target-Based Study Planning"},
		{"hello", "Let's Create Your Perfect Study Plan"},
	}
	for _, tt := range tests {
		reply, err := p.Send(context.Background(), tt.input)
		if err != nil {
			t.Fatalf("send %q: %v", tt.input, err)
		}
		if !strings.Contains(reply.Content, tt.want) {
			t.Errorf("reply to %q missing %q", tt.input, tt.want)
		}
	}
}

func TestGeneratePlanNeedsConversation(t *testing.T) {
	p := NewPlanner(api.NewMock(), &grantAll{}, nil, nil, auth.DemoUser())

	// Only the welcome message so far.
	_, err := p.GeneratePlan(context.Background())
	if !errors.Is(err, ErrNeedMoreContext) {
		t.Fatalf("err = %v, want ErrNeedMoreContext", err)
	}
}

func TestGeneratePlanPersists(t *testing.T) {
	mock := api.NewMock()
	mock.PlanChats = []api.MockResult[string]{{Value: "ok"}}
	mock.Plans = []api.MockResult[api.StudyPlan]{
		{Value: api.StudyPlan{
			ID:       "p42",
			Title:    "Custom Plan",
			Schedule: []api.WeekPlan{{Week: 1, Topics: []string{"mechanics"}}},
		}},
	}
	plans := &memPlans{}

	p := NewPlanner(mock, &grantAll{}, nil, plans, auth.DemoUser())
	ctx := context.Background()
	if _, err := p.Send(ctx, "6 months, physics focus"); err != nil {
		t.Fatalf("send: %v", err)
	}

	plan, err := p.GeneratePlan(ctx)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if plan.ID != "p42" {
		t.Errorf("plan id = %q, want p42", plan.ID)
	}

	if len(plans.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(plans.saved))
	}
	var stored api.StudyPlan
	if err := json.Unmarshal(plans.saved[0].Document, &stored); err != nil {
		t.Fatalf("decode stored plan: %v", err)
	}
	if stored.Title != "Custom Plan" {
		t.Errorf("stored title = %q", stored.Title)
	}

	// The generation request carried the whole transcript.
	if len(mock.PlanCalls) != 1 {
		t.Fatalf("plan calls = %d, want 1", len(mock.PlanCalls))
	}
	if len(mock.PlanCalls[0].ChatHistory) != 3 {
		t.Errorf("chat history = %d messages, want 3", len(mock.PlanCalls[0].ChatHistory))
	}
}

func TestGeneratePlanFallback(t *testing.T) {
	mock := api.NewMock()
	mock.PlanChats = []api.MockResult[string]{{Value: "ok"}}
	// No canned plan: generation errors and falls back.

	p := NewPlanner(mock, &grantAll{}, nil, &memPlans{}, auth.DemoUser())
	ctx := context.Background()
	if _, err := p.Send(ctx, "anything"); err != nil {
		t.Fatalf("send: %v", err)
	}

	plan, err := p.GeneratePlan(ctx)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if plan.Title != "Comprehensive JEE Preparation Plan" {
		t.Errorf("title = %q, want the fallback plan", plan.Title)
	}
	if len(plan.Schedule) != 4 {
		t.Errorf("schedule = %d weeks, want 4", len(plan.Schedule))
	}
	if plan.ID == "" {
		t.Error("fallback plan must get an id")
	}
}

func TestRestoreLatest(t *testing.T) {
	plans := &memPlans{}
	doc, _ := json.Marshal(api.StudyPlan{ID: "old", Title: "Restored"})
	plans.saved = append(plans.saved, store.PlanRecord{
		PlanID:    "old",
		UserID:    auth.DemoUser().ID,
		Document:  doc,
		CreatedAt: time.Now(),
	})

	p := NewPlanner(api.NewMock(), &grantAll{}, nil, plans, auth.DemoUser())
	if err := p.RestoreLatest(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if p.CurrentPlan() == nil || p.CurrentPlan().Title != "Restored" {
		t.Errorf("current plan = %+v", p.CurrentPlan())
	}
}

func TestRestoreLatestEmpty(t *testing.T) {
	p := NewPlanner(api.NewMock(), &grantAll{}, nil, &memPlans{}, auth.DemoUser())
	if err := p.RestoreLatest(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if p.CurrentPlan() != nil {
		t.Error("expected no plan")
	}
}

func TestFallbackPlanTimestamp(t *testing.T) {
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	plan := FallbackPlan(now)
	if plan.CreatedAt != "2025-09-15T10:00:00Z" {
		t.Errorf("created_at = %q", plan.CreatedAt)
	}
}
