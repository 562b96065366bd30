package contentview

import (
	"time"

	"github.com/praxisprep/praxis/internal/content"
)

// contentReadyMsg is sent when the topic content has been generated.
type contentReadyMsg struct {
	Result content.Result
	Err    error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
