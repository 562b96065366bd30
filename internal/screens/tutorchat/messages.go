package tutorchat

import (
	"time"

	"github.com/praxisprep/praxis/internal/tutor"
)

// replyMsg is sent when the tutor's reply is ready.
type replyMsg struct {
	Reply tutor.Message
	Err   error
}

// spinnerTickMsg animates the thinking indicator.
type spinnerTickMsg time.Time
