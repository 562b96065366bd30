package quiz

import "errors"

var (
	// ErrEmptyQuiz is returned when a session is constructed over zero
	// questions. The engine never enters a running state over an empty
	// sequence.
	ErrEmptyQuiz = errors.New("quiz has no questions")

	// ErrNotRevealed is returned by Advance before the current question's
	// answer has been revealed.
	ErrNotRevealed = errors.New("current question not yet answered")

	// ErrCompleted is returned by Select after the quiz has completed.
	ErrCompleted = errors.New("quiz already completed")

	// ErrOptionRange is returned by Select for an option index outside
	// the current question's options.
	ErrOptionRange = errors.New("option index out of range")
)
