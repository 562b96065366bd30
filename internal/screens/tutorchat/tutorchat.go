package tutorchat

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/praxisprep/praxis/internal/screen"
	"github.com/praxisprep/praxis/internal/tutor"
	"github.com/praxisprep/praxis/internal/ui/components"
	"github.com/praxisprep/praxis/internal/ui/layout"
	"github.com/praxisprep/praxis/internal/ui/theme"
	"github.com/praxisprep/praxis/internal/usage"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TutorScreen is the free-form doubt-solving chat.
type TutorScreen struct {
	chat  *tutor.Chat
	input components.TextInput

	waiting      bool
	spinnerFrame int
	quotaHit     bool
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates the tutor chat screen over an existing chat session.
func New(chat *tutor.Chat) *TutorScreen {
	return &TutorScreen{
		chat:  chat,
		input: components.NewTextInput("Ask a doubt...", 500),
	}
}

func (t *TutorScreen) Init() tea.Cmd {
	return t.input.Init()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(tt time.Time) tea.Msg {
		return spinnerTickMsg(tt)
	})
}

func (t *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		t.waiting = false
		if msg.Err != nil {
			if errors.Is(msg.Err, usage.ErrQuotaExceeded) {
				t.quotaHit = true
			}
			return t, t.input.Focus()
		}
		t.quotaHit = false
		return t, t.input.Focus()

	case spinnerTickMsg:
		if !t.waiting {
			return t, nil
		}
		t.spinnerFrame = (t.spinnerFrame + 1) % len(spinnerFrames)
		return t, spinnerTick()

	case tea.KeyMsg:
		if msg.String() == "enter" && !t.waiting {
			text := t.input.Value()
			if text == "" {
				return t, nil
			}
			t.input.Reset()
			t.input.Blur()
			t.waiting = true
			return t, tea.Batch(t.send(text), spinnerTick())
		}
	}

	if t.waiting {
		return t, nil
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TutorScreen) send(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := t.chat.Send(context.Background(), text)
		return replyMsg{Reply: reply, Err: err}
	}
}

func (t *TutorScreen) View(width, height int) string {
	frame := lipgloss.NewStyle().Width(width).Height(height).Padding(1, 4)
	innerWidth := width - 8
	if innerWidth < 20 {
		innerWidth = 20
	}

	transcript := renderTranscript(t.chat.Messages(), innerWidth, height-6)

	var status string
	switch {
	case t.waiting:
		status = theme.Hint.Render(spinnerFrames[t.spinnerFrame] + " Thinking...")
	case t.quotaHit:
		status = theme.Incorrect.Render("Daily limit reached. Come back tomorrow or upgrade to Premium.")
	default:
		status = t.input.View()
	}

	return frame.Render(transcript + "\n\n" + status)
}

// renderTranscript shows the most recent messages that fit in height
// lines, oldest first.
func renderTranscript(messages []tutor.Message, width, height int) string {
	var lines []string
	for _, m := range messages {
		speaker := theme.TutorMsg.Bold(true).Render("Tutor")
		body := theme.TutorMsg
		if m.Role == tutor.RoleUser {
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

func (t *TutorScreen) Title() string {
	return "AI Tutor"
}

// KeyHints implements screen.KeyHintProvider.
func (t *TutorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
