package quizscreen

import (
	"time"

	"github.com/praxisprep/praxis/internal/quiz"
)

// quizReadyMsg is sent when quiz generation has finished.
type quizReadyMsg struct {
	Started *quiz.Started
	Err     error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
