package contentview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/content"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/router"
	"github.com/praxisprep/praxis/internal/screen"
	"github.com/praxisprep/praxis/internal/screens/quizscreen"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/ui/layout"
	"github.com/praxisprep/praxis/internal/ui/theme"
	"github.com/praxisprep/praxis/internal/usage"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ContentScreen shows AI-generated study material for one topic, with
// Learn and Revise tabs and a shortcut into the topic quiz.
type ContentScreen struct {
	svc     *content.Service
	quizSvc *quiz.Service
	user    auth.User
	ref     syllabus.TopicRef

	loading      bool
	spinnerFrame int
	result       content.Result
	quotaHit     bool
	mode         content.Mode
	scroll       int
}

var _ screen.Screen = (*ContentScreen)(nil)
var _ screen.KeyHintProvider = (*ContentScreen)(nil)

// New creates a content screen for the given topic.
func New(svc *content.Service, quizSvc *quiz.Service, user auth.User, ref syllabus.TopicRef) *ContentScreen {
	return &ContentScreen{
		svc:     svc,
		quizSvc: quizSvc,
		user:    user,
		ref:     ref,
		loading: true,
		mode:    content.ModeLearn,
	}
}

func (c *ContentScreen) Init() tea.Cmd {
	return tea.Batch(c.generate(), spinnerTick())
}

func (c *ContentScreen) generate() tea.Cmd {
	return func() tea.Msg {
		res, err := c.svc.Generate(context.Background(), c.user, c.ref)
		return contentReadyMsg{Result: res, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (c *ContentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contentReadyMsg:
		c.loading = false
		if msg.Err != nil {
			if errors.Is(msg.Err, usage.ErrQuotaExceeded) {
				c.quotaHit = true
			}
			return c, nil
		}
		c.result = msg.Result
		return c, nil

	case spinnerTickMsg:
		if !c.loading {
			return c, nil
		}
		c.spinnerFrame = (c.spinnerFrame + 1) % len(spinnerFrames)
		return c, spinnerTick()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	return c, nil
}

func (c *ContentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c.loading {
		return c, nil
	}

	switch msg.String() {
	case "tab":
		if c.mode == content.ModeLearn {
			c.mode = content.ModeRevise
		} else {
			c.mode = content.ModeLearn
		}
		c.scroll = 0
	case "up", "k":
		if c.scroll > 0 {
			c.scroll--
		}
	case "down", "j":
		c.scroll++
	case "q":
		if c.quotaHit {
			return c, nil
		}
		// Hand off to the quiz in place: Esc from the quiz returns to
		// the explorer, not to these notes.
		ref := c.ref
		return c, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: quizscreen.New(c.quizSvc, c.user, ref),
			}
		}
	}

	return c, nil
}

func (c *ContentScreen) View(width, height int) string {
	frame := lipgloss.NewStyle().Width(width).Height(height).Padding(1, 4)

	if c.loading {
		return frame.Render(fmt.Sprintf(
			"%s Generating notes for %s...",
			theme.Selected.Render(spinnerFrames[c.spinnerFrame]),
			c.ref.Topic.Name,
		))
	}

	if c.quotaHit {
		return frame.Render(
			theme.Incorrect.Render("Daily limit reached") + "\n\n" +
				theme.Body.Render("You have used all of today's free AI generations.\nCome back tomorrow, or upgrade to Premium for unlimited access."),
		)
	}

	var b strings.Builder
	b.WriteString(c.renderTabs() + "\n\n")

	text := c.result.Learn
	if c.mode == content.ModeRevise {
		text = c.result.Revise
	}
	b.WriteString(c.renderBody(text, width-8, height-6))

	if c.result.Source == content.SourceFallback {
		b.WriteString("\n" + theme.Hint.Render("Offline notes shown; reopen this topic to retry the AI version."))
	}

	return frame.Render(b.String())
}

func (c *ContentScreen) renderTabs() string {
	learn := " Learn "
	revise := " Revise "
	active := lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Primary).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim).Background(theme.BgCard)

	if c.mode == content.ModeLearn {
		return active.Render(learn) + " " + inactive.Render(revise)
	}
	return inactive.Render(learn) + " " + active.Render(revise)
}

// renderBody shows a scroll window over the content lines.
func (c *ContentScreen) renderBody(text string, width, height int) string {
	if width < 20 {
		width = 20
	}
	if height < 4 {
		height = 4
	}

	lines := wrap(text, width)
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if c.scroll > maxScroll {
		c.scroll = maxScroll
	}

	end := c.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[c.scroll:end], "\n")

	if maxScroll > 0 {
		visible += "\n" + theme.Hint.Render(fmt.Sprintf("── %d%% ──", (end*100)/len(lines)))
	}
	return theme.Body.Render(visible)
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

func (c *ContentScreen) Title() string {
	return c.ref.Topic.Name
}

// KeyHints implements screen.KeyHintProvider.
func (c *ContentScreen) KeyHints() []layout.KeyHint {
	if c.loading || c.quotaHit {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Learn/Revise"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Q", Description: "Take quiz"},
		{Key: "Esc", Description: "Back"},
	}
}
