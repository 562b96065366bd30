package plannerchat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/screen"
	"github.com/praxisprep/praxis/internal/studyplan"
	"github.com/praxisprep/praxis/internal/ui/components"
	"github.com/praxisprep/praxis/internal/ui/layout"
	"github.com/praxisprep/praxis/internal/ui/theme"
	"github.com/praxisprep/praxis/internal/usage"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// PlannerScreen is the study-plan chat: the student describes their
// target and constraints, then turns the conversation into a weekly
// plan. Tab toggles between the chat and the current plan.
type PlannerScreen struct {
	planner *studyplan.Planner
	input   components.TextInput

	waiting      bool
	generating   bool
	spinnerFrame int
	quotaHit     bool
	needContext  bool
	showPlan     bool
	planScroll   int
}

var _ screen.Screen = (*PlannerScreen)(nil)
var _ screen.KeyHintProvider = (*PlannerScreen)(nil)

// New creates the planner screen over an existing planning session,
// restoring the most recent persisted plan.
func New(planner *studyplan.Planner) *PlannerScreen {
	_ = planner.RestoreLatest(context.Background())
	return &PlannerScreen{
		planner: planner,
		input:   components.NewTextInput("Describe your target and schedule...", 500),
	}
}

func (p *PlannerScreen) Init() tea.Cmd {
	return p.input.Init()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(tt time.Time) tea.Msg {
		return spinnerTickMsg(tt)
	})
}

func (p *PlannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		p.waiting = false
		p.flagError(msg.Err)
		return p, p.input.Focus()

	case planReadyMsg:
		p.waiting = false
		p.generating = false
		p.flagError(msg.Err)
		if msg.Err == nil {
			p.showPlan = true
			p.planScroll = 0
		}
		return p, p.input.Focus()

	case spinnerTickMsg:
		if !p.waiting {
			return p, nil
		}
		p.spinnerFrame = (p.spinnerFrame + 1) % len(spinnerFrames)
		return p, spinnerTick()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *PlannerScreen) flagError(err error) {
	p.quotaHit = false
	p.needContext = false
	switch {
	case err == nil:
	case errors.Is(err, usage.ErrQuotaExceeded):
		p.quotaHit = true
	case errors.Is(err, studyplan.ErrNeedMoreContext):
		p.needContext = true
	}
}

func (p *PlannerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.waiting {
		return p, nil
	}

	switch msg.String() {
	case "tab":
		if p.planner.CurrentPlan() != nil {
			p.showPlan = !p.showPlan
		}
		return p, nil
	case "ctrl+g":
		p.waiting = true
		p.generating = true
		p.input.Blur()
		return p, tea.Batch(p.generate(), spinnerTick())
	case "enter":
		if p.showPlan {
			return p, nil
		}
		text := p.input.Value()
		if text == "" {
			return p, nil
		}
		p.input.Reset()
		p.input.Blur()
		p.waiting = true
		return p, tea.Batch(p.send(text), spinnerTick())
	}

	if p.showPlan {
		switch msg.String() {
		case "up", "k":
			if p.planScroll > 0 {
				p.planScroll--
			}
		case "down", "j":
			p.planScroll++
		}
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PlannerScreen) send(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := p.planner.Send(context.Background(), text)
		return replyMsg{Reply: reply, Err: err}
	}
}

func (p *PlannerScreen) generate() tea.Cmd {
	return func() tea.Msg {
		plan, err := p.planner.GeneratePlan(context.Background())
		return planReadyMsg{Plan: plan, Err: err}
	}
}

func (p *PlannerScreen) View(width, height int) string {
	frame := lipgloss.NewStyle().Width(width).Height(height).Padding(1, 4)
	innerWidth := width - 8
	if innerWidth < 20 {
		innerWidth = 20
	}

	if p.showPlan {
		return frame.Render(p.renderPlan(innerWidth, height-4))
	}

	transcript := p.renderTranscript(innerWidth, height-6)

	var status string
	switch {
	case p.generating:
		status = theme.Hint.Render(spinnerFrames[p.spinnerFrame] + " Building your study plan...")
	case p.waiting:
		status = theme.Hint.Render(spinnerFrames[p.spinnerFrame] + " Thinking...")
	case p.quotaHit:
		status = theme.Incorrect.Render("Daily limit reached. Come back tomorrow or upgrade to Premium.")
	case p.needContext:
		status = theme.Hint.Render("Tell me a bit more first, then press Ctrl+G again.")
	default:
		status = p.input.View()
	}

	return frame.Render(transcript + "\n\n" + status)
}

func (p *PlannerScreen) renderTranscript(width, height int) string {
	var lines []string
	for _, m := range p.planner.Messages() {
		speaker := theme.TutorMsg.Bold(true).Render("Planner")
		body := theme.TutorMsg
		if m.Role == studyplan.RoleUser {
			speaker = theme.StudentMsg.Render("You")
			body = theme.Body
		}
		lines = append(lines, speaker)
		for _, l := range wrap(m.Content, width) {
			lines = append(lines, body.Render("  "+l))
		}
		lines = append(lines, "")
	}

	if height > 0 && len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (p *PlannerScreen) renderPlan(width, height int) string {
	plan := p.planner.CurrentPlan()
	if plan == nil {
		return theme.Hint.Render("No plan yet. Chat first, then press Ctrl+G.")
	}

	lines := planLines(plan, width)
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.planScroll > maxScroll {
		p.planScroll = maxScroll
	}
	end := p.planScroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[p.planScroll:end], "\n")
}

// planLines flattens a study plan into display lines.
func planLines(plan *api.StudyPlan, width int) []string {
	var lines []string
	lines = append(lines, theme.Title.Render(plan.Title))
	if plan.Description != "" {
		lines = append(lines, "")
		lines = append(lines, wrapStyled(plan.Description, width, theme.Body)...)
	}
	if plan.Duration != "" {
		lines = append(lines, theme.Hint.Render("Duration: "+plan.Duration))
	}
	for _, w := range plan.Schedule {
		lines = append(lines, "")
		lines = append(lines, theme.Selected.Render(fmt.Sprintf("Week %d", w.Week)))
		for _, topic := range w.Topics {
			lines = append(lines, wrapStyled("• "+topic, width, theme.Body)...)
		}
		for _, goal := range w.Goals {
			lines = append(lines, wrapStyled("Goal: "+goal, width, theme.Hint)...)
		}
	}
	return lines
}

func wrapStyled(text string, width int, style lipgloss.Style) []string {
	raw := wrap(text, width)
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = style.Render(l)
	}
	return out
}

// wrap splits text into display lines no wider than width.
func wrap(text string, width int) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range strings.Fields(raw) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				out = append(out, line)
				line = word
			}
		}
		out = append(out, line)
	}
	return out
}

func (p *PlannerScreen) Title() string {
	return "Study Planner"
}

// KeyHints implements screen.KeyHintProvider.
func (p *PlannerScreen) KeyHints() []layout.KeyHint {
	if p.showPlan {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Tab", Description: "Back to chat"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+G", Description: "Generate plan"},
	}
	if p.planner.CurrentPlan() != nil {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "View plan"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}
