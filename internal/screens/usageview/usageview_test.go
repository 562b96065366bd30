package usageview

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/usage"
)

func TestFreeUserShowsCounter(t *testing.T) {
	tr := usage.NewTracker(usage.NewInMemStorage(), nil, nil, 5)
	user := auth.DemoUser()
	tr.TryConsume(context.Background(), user, "content_generation")
	tr.TryConsume(context.Background(), user, "quiz_generation")

	s := New(tr, user)
	view := s.View(100, 30)

	if !strings.Contains(view, "2/5") {
		t.Errorf("expected 2/5 counter, got:\n%s", view)
	}
	if !strings.Contains(view, "Free plan") {
		t.Errorf("expected free plan label, got:\n%s", view)
	}
}

func TestPremiumUserShowsUnlimited(t *testing.T) {
	premium := func(email string) bool { return email == "demo@praxis.local" }
	tr := usage.NewTracker(usage.NewInMemStorage(), nil, premium, 5)

	s := New(tr, auth.DemoUser())
	view := s.View(100, 30)

	if !strings.Contains(view, "Premium plan") {
		t.Errorf("expected premium label, got:\n%s", view)
	}
}

func TestRefreshPicksUpNewConsumption(t *testing.T) {
	tr := usage.NewTracker(usage.NewInMemStorage(), nil, nil, 5)
	user := auth.DemoUser()

	s := New(tr, user)
	if !strings.Contains(s.View(100, 30), "0/5") {
		t.Fatal("expected 0/5 before any use")
	}

	tr.TryConsume(context.Background(), user, "ai_interaction")
	updated, _ := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	s = updated.(*UsageScreen)

	if !strings.Contains(s.View(100, 30), "1/5") {
		t.Errorf("expected 1/5 after refresh")
	}
}
