package explorer

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/content"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/router"
	"github.com/praxisprep/praxis/internal/screen"
	"github.com/praxisprep/praxis/internal/screens/contentview"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/ui/layout"
	"github.com/praxisprep/praxis/internal/ui/theme"
)

// level is the drill-down depth within the syllabus tree.
type level int

const (
	levelSubject level = iota
	levelChapter
	levelTopic
)

// ExplorerScreen lets the student drill from subject to chapter to
// topic. Selecting a topic opens its study content. It opens on the
// seed tree and swaps in the backend's syllabus when the fetch
// succeeds.
type ExplorerScreen struct {
	backend    api.Backend
	contentSvc *content.Service
	quizSvc    *quiz.Service
	user       auth.User

	subjects []syllabus.Subject
	depth    level
	cursor   [3]int
}

var _ screen.Screen = (*ExplorerScreen)(nil)

// New creates the syllabus explorer. backend may be nil to skip the
// remote syllabus fetch.
func New(backend api.Backend, contentSvc *content.Service, quizSvc *quiz.Service, user auth.User) *ExplorerScreen {
	return &ExplorerScreen{
		backend:    backend,
		contentSvc: contentSvc,
		quizSvc:    quizSvc,
		user:       user,
		subjects:   syllabus.Subjects(),
	}
}

func (e *ExplorerScreen) Init() tea.Cmd {
	if e.backend == nil {
		return nil
	}
	return e.fetchSyllabus()
}

// fetchSyllabus asks the backend for its syllabus tree. Any failure is
// silent: the seed tree is already on screen.
func (e *ExplorerScreen) fetchSyllabus() tea.Cmd {
	return func() tea.Msg {
		raw, err := e.backend.Syllabus(context.Background())
		if err != nil {
			return syllabusReadyMsg{Err: err}
		}
		subjects, err := syllabus.FromAPI(raw)
		return syllabusReadyMsg{Subjects: subjects, Err: err}
	}
}

func (e *ExplorerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if rmsg, ok := msg.(syllabusReadyMsg); ok {
		// Only swap trees while still at the subject list; yanking the
		// tree out from under a drilled-in cursor would invalidate it.
		if rmsg.Err == nil && e.depth == levelSubject {
			e.subjects = rmsg.Subjects
			if e.cursor[levelSubject] >= len(e.subjects) {
				e.cursor[levelSubject] = 0
			}
		}
		return e, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if e.cursor[e.depth] > 0 {
			e.cursor[e.depth]--
		}
	case "down", "j":
		if e.cursor[e.depth] < e.itemCount()-1 {
			e.cursor[e.depth]++
		}
	case "left", "h", "backspace":
		if e.depth > levelSubject {
			e.cursor[e.depth] = 0
			e.depth--
		}
	case "right", "l", "enter":
		return e, e.drill()
	}

	return e, nil
}

// drill advances one level, or opens the selected topic at the bottom.
func (e *ExplorerScreen) drill() tea.Cmd {
	switch e.depth {
	case levelSubject:
		if len(e.currentSubject().Chapters) > 0 {
			e.depth = levelChapter
			e.cursor[levelChapter] = 0
		}
		return nil
	case levelChapter:
		if len(e.currentChapter().Topics) > 0 {
			e.depth = levelTopic
			e.cursor[levelTopic] = 0
		}
		return nil
	case levelTopic:
		// Build the ref from the displayed tree, which may be the
		// backend's rather than the seed's.
		ref := syllabus.TopicRef{
			Subject: e.currentSubject().Name,
			Chapter: e.currentChapter().Name,
			Topic:   e.currentChapter().Topics[e.cursor[levelTopic]],
		}
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: contentview.New(e.contentSvc, e.quizSvc, e.user, ref),
			}
		}
	}
	return nil
}

func (e *ExplorerScreen) itemCount() int {
	switch e.depth {
	case levelSubject:
		return len(e.subjects)
	case levelChapter:
		return len(e.currentSubject().Chapters)
	default:
		return len(e.currentChapter().Topics)
	}
}

func (e *ExplorerScreen) currentSubject() syllabus.Subject {
	return e.subjects[e.cursor[levelSubject]]
}

func (e *ExplorerScreen) currentChapter() syllabus.Chapter {
	return e.currentSubject().Chapters[e.cursor[levelChapter]]
}

func (e *ExplorerScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Hint.Render("  "+e.breadcrumb()) + "\n\n")

	switch e.depth {
	case levelSubject:
		for i, s := range e.subjects {
			b.WriteString(e.row(i, s.Name, fmt.Sprintf("%d chapters", len(s.Chapters))))
		}
	case levelChapter:
		for i, ch := range e.currentSubject().Chapters {
			detail := fmt.Sprintf("Class %d · %d topics", ch.Class, len(ch.Topics))
			b.WriteString(e.row(i, ch.Name, detail))
		}
	case levelTopic:
		for i, tp := range e.currentChapter().Topics {
			detail := ""
			if len(tp.Subtopics) > 0 {
				detail = strings.Join(tp.Subtopics, ", ")
			}
			b.WriteString(e.row(i, tp.Name, detail))
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (e *ExplorerScreen) breadcrumb() string {
	parts := []string{"Syllabus"}
	if e.depth >= levelChapter {
		parts = append(parts, e.currentSubject().Name)
	}
	if e.depth >= levelTopic {
		parts = append(parts, e.currentChapter().Name)
	}
	return strings.Join(parts, " / ")
}

func (e *ExplorerScreen) row(i int, label, detail string) string {
	line := "    " + label
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == e.cursor[e.depth] {
		line = "  ▸ " + label
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	out := style.Render(line)
	if detail != "" {
		out += "  " + theme.Hint.Render(detail)
	}
	return out + "\n"
}

func (e *ExplorerScreen) Title() string {
	return "Syllabus"
}

// KeyHints implements screen.KeyHintProvider.
func (e *ExplorerScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
	}
	if e.depth > levelSubject {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Up a level"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}
