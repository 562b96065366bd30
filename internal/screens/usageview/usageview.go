package usageview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/screen"
	"github.com/praxisprep/praxis/internal/ui/components"
	"github.com/praxisprep/praxis/internal/ui/layout"
	"github.com/praxisprep/praxis/internal/ui/theme"
	"github.com/praxisprep/praxis/internal/usage"
)

// UsageScreen shows today's quota, the plan tier, and which features
// count against the daily limit.
type UsageScreen struct {
	tracker *usage.Tracker
	user    auth.User
	status  usage.Status
}

var _ screen.Screen = (*UsageScreen)(nil)
var _ screen.KeyHintProvider = (*UsageScreen)(nil)

// New creates the usage screen.
func New(tracker *usage.Tracker, user auth.User) *UsageScreen {
	return &UsageScreen{
		tracker: tracker,
		user:    user,
		status:  tracker.Status(context.Background(), user),
	}
}

func (u *UsageScreen) Init() tea.Cmd {
	return nil
}

func (u *UsageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "r" {
		u.status = u.tracker.Refresh(context.Background(), u.user)
	}
	return u, nil
}

func (u *UsageScreen) View(width, height int) string {
	frame := lipgloss.NewStyle().Width(width).Height(height).Padding(1, 4)

	var b strings.Builder

	if u.status.IsPremium {
		b.WriteString(theme.Selected.Render("Premium plan") + "\n\n")
		b.WriteString(theme.Body.Render("Unlimited AI generations. Study as much as you like.") + "\n")
		return frame.Render(b.String())
	}

	b.WriteString(theme.Body.Render("Free plan") + "\n\n")

	pct := 0.0
	if u.status.UsageLimit > 0 {
		pct = float64(u.status.UsageCount) / float64(u.status.UsageLimit)
	}
	label := fmt.Sprintf("Today  %d/%d", u.status.UsageCount, u.status.UsageLimit)
	bar := components.NewProgressBar(label, pct, false, 44)
	b.WriteString(bar.View() + "\n\n")

	if !u.status.CanUseFeature {
		b.WriteString(theme.Incorrect.Render("Daily limit reached.") + " ")
	}
	if u.status.ResetTime != nil {
		b.WriteString(theme.Hint.Render(
			"Resets around "+u.status.ResetTime.Local().Format("Mon 3:04 PM")) + "\n")
	} else {
		b.WriteString(theme.Hint.Render("No AI generations used yet today.") + "\n")
	}

	b.WriteString("\n" + theme.Body.Render("Each of these counts as one use:") + "\n")
	for _, f := range []string{
		"Topic notes (Learn / Revise)",
		"Topic quiz",
		"Tutor chat message",
		"Study-plan chat message",
		"Study-plan generation",
	} {
		b.WriteString(theme.Hint.Render("  • "+f) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("Upgrade to Premium for unlimited access."))

	return frame.Render(b.String())
}

func (u *UsageScreen) Title() string {
	return "Usage & Plan"
}

// KeyHints implements screen.KeyHintProvider.
func (u *UsageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
