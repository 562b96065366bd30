package quiz

// Session drives a linear sequence of multiple-choice questions.
//
// The machine has two states: in-progress (current index + reveal flag)
// and completed. Selecting an answer reveals correctness and locks the
// answer; advancing past the last question completes the session.
// Restart returns to the initial state from anywhere.
//
// A Session is owned by a single UI session and is not safe for
// concurrent use.
type Session struct {
	questions []Question
	current   int
	selected  []int // one slot per question, -1 = unanswered
	revealed  bool
	completed bool
}

// NewSession creates a session over a fixed, non-empty question sequence.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	s := &Session{
		questions: questions,
		selected:  make([]int, len(questions)),
	}
	for i := range s.selected {
		s.selected[i] = -1
	}
	return s, nil
}

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Index returns the current question index.
func (s *Session) Index() int { return s.current }

// Current returns the current question.
func (s *Session) Current() Question { return s.questions[s.current] }

// Revealed reports whether the current question's answer is revealed.
func (s *Session) Revealed() bool { return s.revealed }

// Completed reports whether the session has finished.
func (s *Session) Completed() bool { return s.completed }

// Answer returns the recorded answer for question i, if any.
func (s *Session) Answer(i int) (option int, answered bool) {
	if i < 0 || i >= len(s.selected) || s.selected[i] < 0 {
		return -1, false
	}
	return s.selected[i], true
}

// Select records option as the answer to the current question and reveals
// correctness. Once revealed the answer is locked: further calls are
// no-ops until Advance.
func (s *Session) Select(option int) error {
	if s.completed {
		return ErrCompleted
	}
	if s.revealed {
		return nil // locked
	}
	if option < 0 || option >= len(s.Current().Options) {
		return ErrOptionRange
	}
	s.selected[s.current] = option
	s.revealed = true
	return nil
}

// Advance moves to the next question, or completes the session on the
// last one. Valid only after the current answer has been revealed.
func (s *Session) Advance() error {
	if s.completed {
		return ErrCompleted
	}
	if !s.revealed {
		return ErrNotRevealed
	}
	if s.current < len(s.questions)-1 {
		s.current++
		s.revealed = false
		return nil
	}
	s.completed = true
	return nil
}

// Restart resets to the initial state, clearing all selections.
// Valid from any state.
func (s *Session) Restart() {
	s.current = 0
	s.revealed = false
	s.completed = false
	for i := range s.selected {
		s.selected[i] = -1
	}
}

// Score counts the questions answered correctly. Computable at any time;
// meaningful at completion.
func (s *Session) Score() int {
	score := 0
	for i, sel := range s.selected {
		if sel >= 0 && sel == s.questions[i].CorrectIndex {
			score++
		}
	}
	return score
}

// Progress returns the fraction of the quiz reached, in (0,1].
func (s *Session) Progress() float64 {
	if s.completed {
		return 1
	}
	return float64(s.current+1) / float64(len(s.questions))
}

// Summary builds the completion view: score, percentage, grade band, and
// a per-question review.
func (s *Session) Summary() Summary {
	score := s.Score()
	total := len(s.questions)
	pct := score * 100 / total

	results := make([]Result, total)
	for i, q := range s.questions {
		sel := s.selected[i]
		results[i] = Result{
			Index:         i,
			Answered:      sel >= 0,
			Chosen:        sel,
			Correct:       sel == q.CorrectIndex,
			CorrectOption: q.Options[q.CorrectIndex],
		}
	}

	return Summary{
		Score:      score,
		Total:      total,
		Percentage: pct,
		Grade:      gradeFor(pct),
		Results:    results,
	}
}
