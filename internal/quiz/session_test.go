package quiz

import (
	"errors"
	"testing"
)

func fiveQuestions() []Question {
	qs := make([]Question, 5)
	for i := range qs {
		qs[i] = Question{
			Prompt:       "q",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
			Explanation:  "because",
		}
	}
	return qs
}

func TestNewSessionEmpty(t *testing.T) {
	_, err := NewSession(nil)
	if !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("err = %v, want ErrEmptyQuiz", err)
	}
	_, err = NewSession([]Question{})
	if !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("err = %v, want ErrEmptyQuiz", err)
	}
}

func TestInitialState(t *testing.T) {
	s, err := NewSession(fiveQuestions())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}
	if s.Revealed() || s.Completed() {
		t.Error("expected unrevealed, uncompleted initial state")
	}
	for i := 0; i < s.Len(); i++ {
		if _, answered := s.Answer(i); answered {
			t.Errorf("question %d unexpectedly answered", i)
		}
	}
}

func TestSelectRevealsAndLocks(t *testing.T) {
	s, _ := NewSession(fiveQuestions())

	if err := s.Select(2); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !s.Revealed() {
		t.Fatal("expected revealed after select")
	}

	// Second select is a silent no-op: the answer stays locked.
	if err := s.Select(3); err != nil {
		t.Fatalf("locked select: %v", err)
	}
	got, answered := s.Answer(0)
	if !answered || got != 2 {
		t.Errorf("answer(0) = %d,%v, want 2,true", got, answered)
	}
}

func TestSelectOptionRange(t *testing.T) {
	s, _ := NewSession(fiveQuestions())

	for _, opt := range []int{-1, 4, 99} {
		if err := s.Select(opt); !errors.Is(err, ErrOptionRange) {
			t.Errorf("select(%d) err = %v, want ErrOptionRange", opt, err)
		}
	}
	if s.Revealed() {
		t.Error("rejected select must not reveal")
	}
}

func TestAdvanceRequiresReveal(t *testing.T) {
	s, _ := NewSession(fiveQuestions())

	if err := s.Advance(); !errors.Is(err, ErrNotRevealed) {
		t.Fatalf("advance err = %v, want ErrNotRevealed", err)
	}

	if err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if s.Revealed() {
		t.Error("reveal flag must clear on advance")
	}
}

func TestFullWalkthrough(t *testing.T) {
	qs := []Question{
		{Prompt: "1+1?", Options: []string{"2", "3"}, CorrectIndex: 0},
		{Prompt: "2+2?", Options: []string{"3", "4"}, CorrectIndex: 1},
	}
	s, err := NewSession(qs)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := s.Select(0); err != nil {
		t.Fatalf("select 1: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance 1: %v", err)
	}
	if err := s.Select(1); err != nil {
		t.Fatalf("select 2: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance 2: %v", err)
	}

	if !s.Completed() {
		t.Fatal("expected completed after advancing past last question")
	}
	if s.Score() != 2 {
		t.Errorf("score = %d, want 2", s.Score())
	}

	// Terminal state rejects further transitions.
	if err := s.Select(0); !errors.Is(err, ErrCompleted) {
		t.Errorf("select after completion err = %v, want ErrCompleted", err)
	}
	if err := s.Advance(); !errors.Is(err, ErrCompleted) {
		t.Errorf("advance after completion err = %v, want ErrCompleted", err)
	}
}

func TestScorePartial(t *testing.T) {
	qs := fiveQuestions() // correct answers are 0,1,2,3,0

	s, _ := NewSession(qs)
	picks := []int{0, 1, 2, 0, 1} // first three right, last two wrong
	for i, p := range picks {
		if err := s.Select(p); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if s.Score() != 3 {
		t.Errorf("score = %d, want 3", s.Score())
	}

	sum := s.Summary()
	if sum.Percentage != 60 {
		t.Errorf("percentage = %d, want 60", sum.Percentage)
	}
	if sum.Grade != GradeGood {
		t.Errorf("grade = %q, want %q", sum.Grade, GradeGood)
	}
	if len(sum.Results) != 5 {
		t.Fatalf("results = %d, want 5", len(sum.Results))
	}
	if !sum.Results[0].Correct || sum.Results[3].Correct {
		t.Error("per-question correctness mismatch")
	}
}

func TestRestartFromEveryState(t *testing.T) {
	assertInitial := func(t *testing.T, s *Session) {
		t.Helper()
		if s.Index() != 0 || s.Revealed() || s.Completed() {
			t.Fatalf("not initial: index=%d revealed=%v completed=%v",
				s.Index(), s.Revealed(), s.Completed())
		}
		if s.Score() != 0 {
			t.Fatalf("score = %d after restart, want 0", s.Score())
		}
	}

	t.Run("mid-quiz", func(t *testing.T) {
		s, _ := NewSession(fiveQuestions())
		s.Select(0)
		s.Advance()
		s.Select(1)
		s.Restart()
		assertInitial(t, s)
	})

	t.Run("revealed", func(t *testing.T) {
		s, _ := NewSession(fiveQuestions())
		s.Select(0)
		s.Restart()
		assertInitial(t, s)
	})

	t.Run("completed", func(t *testing.T) {
		s, _ := NewSession(fiveQuestions())
		for !s.Completed() {
			s.Select(0)
			s.Advance()
		}
		s.Restart()
		assertInitial(t, s)

		// A restarted session is fully playable again.
		if err := s.Select(1); err != nil {
			t.Fatalf("select after restart: %v", err)
		}
	})
}

func TestProgress(t *testing.T) {
	s, _ := NewSession(fiveQuestions())
	if got := s.Progress(); got != 0.2 {
		t.Errorf("progress = %v, want 0.2", got)
	}
	s.Select(0)
	s.Advance()
	if got := s.Progress(); got != 0.4 {
		t.Errorf("progress = %v, want 0.4", got)
	}
	for !s.Completed() {
		s.Select(0)
		s.Advance()
	}
	if got := s.Progress(); got != 1 {
		t.Errorf("progress = %v, want 1", got)
	}
}

func TestGradeBands(t *testing.T) {
	tests := []struct {
		pct  int
		want Grade
	}{
		{100, GradeExcellent},
		{80, GradeExcellent},
		{79, GradeGood},
		{60, GradeGood},
		{59, GradePractice},
		{0, GradePractice},
	}
	for _, tt := range tests {
		if got := gradeFor(tt.pct); got != tt.want {
			t.Errorf("gradeFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestQuestionValidate(t *testing.T) {
	valid := Question{Prompt: "q", Options: []string{"a", "b"}, CorrectIndex: 1}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	bad := []Question{
		{Prompt: "", Options: []string{"a", "b"}, CorrectIndex: 0},
		{Prompt: "q", Options: []string{"a"}, CorrectIndex: 0},
		{Prompt: "q", Options: []string{"a", "b"}, CorrectIndex: 2},
		{Prompt: "q", Options: []string{"a", "b"}, CorrectIndex: -1},
	}
	for i, q := range bad {
		if err := q.Validate(); err == nil {
			t.Errorf("bad question %d accepted", i)
		}
	}
}

func TestFallbackQuestionsValid(t *testing.T) {
	qs := FallbackQuestions("Physics", "Gravitation")
	if len(qs) == 0 {
		t.Fatal("fallback set must be non-empty")
	}
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			t.Errorf("fallback question %d invalid: %v", i, err)
		}
	}
	if _, err := NewSession(qs); err != nil {
		t.Errorf("session over fallback: %v", err)
	}
}
