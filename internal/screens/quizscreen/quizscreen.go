package quizscreen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/screen"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/ui/components"
	"github.com/praxisprep/praxis/internal/ui/layout"
	"github.com/praxisprep/praxis/internal/ui/theme"
	"github.com/praxisprep/praxis/internal/usage"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen runs one quiz session: question by question, answer
// reveal, then a scored summary.
type QuizScreen struct {
	svc  *quiz.Service
	user auth.User
	ref  syllabus.TopicRef

	loading      bool
	spinnerFrame int
	quotaHit     bool
	failed       bool
	started      *quiz.Started
	choice       components.MultiChoice
	summary      *quiz.Summary
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given topic.
func New(svc *quiz.Service, user auth.User, ref syllabus.TopicRef) *QuizScreen {
	return &QuizScreen{
		svc:     svc,
		user:    user,
		ref:     ref,
		loading: true,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.generate(), spinnerTick())
}

func (q *QuizScreen) generate() tea.Cmd {
	return func() tea.Msg {
		started, err := q.svc.Generate(context.Background(), q.user, q.ref)
		return quizReadyMsg{Started: started, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		q.loading = false
		if msg.Err != nil {
			if errors.Is(msg.Err, usage.ErrQuotaExceeded) {
				q.quotaHit = true
			} else {
				q.failed = true
			}
			return q, nil
		}
		q.started = msg.Started
		q.loadQuestion()
		return q, nil

	case spinnerTickMsg:
		if !q.loading {
			return q, nil
		}
		q.spinnerFrame = (q.spinnerFrame + 1) % len(spinnerFrames)
		return q, spinnerTick()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

// loadQuestion syncs the choice component with the session's current
// question.
func (q *QuizScreen) loadQuestion() {
	sess := q.started.Session
	cur := sess.Current()
	prompt := fmt.Sprintf("Q%d of %d. %s", sess.Index()+1, sess.Len(), cur.Prompt)
	q.choice = components.NewMultiChoice(prompt, cur.Options, cur.CorrectIndex)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.loading || q.quotaHit || q.failed {
		return q, nil
	}

	if q.summary != nil {
		if msg.String() == "r" {
			q.started.Session.Restart()
			q.summary = nil
			q.loadQuestion()
		}
		return q, nil
	}

	sess := q.started.Session

	if sess.Revealed() {
		if msg.String() == "enter" {
			if err := sess.Advance(); err != nil {
				return q, nil
			}
			if sess.Completed() {
				sum := sess.Summary()
				q.summary = &sum
				q.svc.RecordCompletion(context.Background(), q.started.SessionID, sum)
				return q, nil
			}
			q.loadQuestion()
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)
	if q.choice.Revealed {
		// Mirror the component's choice into the session, which owns
		// scoring and the answer lock.
		if err := sess.Select(q.choice.ChosenIndex); err == nil {
			q.svc.RecordAnswer(context.Background(), q.started.SessionID,
				sess.Index(), q.choice.IsCorrect())
		}
	}
	return q, cmd
}

func (q *QuizScreen) View(width, height int) string {
	frame := lipgloss.NewStyle().Width(width).Height(height).Padding(1, 4)

	if q.loading {
		return frame.Render(fmt.Sprintf(
			"%s Preparing a quiz on %s...",
			theme.Selected.Render(spinnerFrames[q.spinnerFrame]),
			q.ref.Topic.Name,
		))
	}

	if q.quotaHit {
		return frame.Render(
			theme.Incorrect.Render("Daily limit reached") + "\n\n" +
				theme.Body.Render("You have used all of today's free AI generations.\nCome back tomorrow, or upgrade to Premium for unlimited access."),
		)
	}

	if q.failed {
		return frame.Render(
			theme.Incorrect.Render("Couldn't start the quiz") + "\n\n" +
				theme.Body.Render("Something went wrong while preparing the questions.\nGo back and try this topic again."),
		)
	}

	if q.summary != nil {
		return frame.Render(q.renderSummary(width - 8))
	}

	return frame.Render(q.renderQuestion(width - 8))
}

func (q *QuizScreen) renderQuestion(width int) string {
	sess := q.started.Session

	var b strings.Builder
	bar := components.NewProgressBar("", sess.Progress(), false, min(width, 40))
	b.WriteString(bar.View() + "\n\n")
	b.WriteString(q.choice.View())

	if sess.Revealed() {
		cur := sess.Current()
		b.WriteString("\n")
		if q.choice.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!") + "\n")
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite.") + "\n")
		}
		if cur.Explanation != "" {
			b.WriteString("\n" + theme.Body.Render(cur.Explanation) + "\n")
		}
	}

	if q.started.Fallback && sess.Index() == 0 && !sess.Revealed() {
		b.WriteString("\n" + theme.Hint.Render("Offline sample questions shown."))
	}

	return b.String()
}

func (q *QuizScreen) renderSummary(width int) string {
	sum := q.summary

	var headline string
	switch sum.Grade {
	case quiz.GradeExcellent:
		headline = theme.Correct.Render("Excellent work!")
	case quiz.GradeGood:
		headline = theme.Selected.Render("Good job!")
	default:
		headline = theme.Body.Render("Keep practicing!")
	}

	var b strings.Builder
	b.WriteString(headline + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"You scored %d out of %d (%d%%).", sum.Score, sum.Total, sum.Percentage)) + "\n\n")

	for _, r := range sum.Results {
		mark := theme.Incorrect.Render("✗")
		if r.Correct {
			mark = theme.Correct.Render("✓")
		}
		line := fmt.Sprintf("%s Q%d", mark, r.Index+1)
		if !r.Correct {
			line += theme.Hint.Render("  answer: " + r.CorrectOption)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

func (q *QuizScreen) Title() string {
	return "Quiz: " + q.ref.Topic.Name
}

// KeyHints implements screen.KeyHintProvider.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.loading, q.quotaHit, q.failed:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case q.summary != nil:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry quiz"},
			{Key: "Esc", Description: "Back"},
		}
	case q.started.Session.Revealed():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
