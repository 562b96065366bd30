package quiz

import "fmt"

// Question is a single multiple-choice question.
type Question struct {
	// Prompt is the question text shown to the student.
	Prompt string

	// Options are the answer choices, in display order. Always ≥ 2.
	Options []string

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int

	// Explanation is the worked solution revealed after answering.
	Explanation string
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question has an empty prompt")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q has %d options, need at least 2", q.Prompt, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q has correct index %d out of range [0,%d)", q.Prompt, q.CorrectIndex, len(q.Options))
	}
	return nil
}

// Result is the outcome of one question for the completion review.
type Result struct {
	Index    int
	Answered bool
	Chosen   int // -1 when unanswered
	Correct  bool

	// CorrectOption is the text of the right answer, for review display.
	CorrectOption string
}

// Grade bands for the completion summary.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradePractice  Grade = "keep-practicing"
)

// Summary is the final score view of a completed quiz.
type Summary struct {
	Score      int
	Total      int
	Percentage int
	Grade      Grade
	Results    []Result
}

// gradeFor maps a percentage to its band, mirroring the product's
// 80/60 thresholds.
func gradeFor(percentage int) Grade {
	switch {
	case percentage >= 80:
		return GradeExcellent
	case percentage >= 60:
		return GradeGood
	default:
		return GradePractice
	}
}
