package plannerchat

import (
	"time"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/studyplan"
)

// replyMsg is sent when the planner's chat reply is ready.
type replyMsg struct {
	Reply studyplan.Message
	Err   error
}

// planReadyMsg is sent when plan generation has finished.
type planReadyMsg struct {
	Plan *api.StudyPlan
	Err  error
}

// spinnerTickMsg animates the thinking indicator.
type spinnerTickMsg time.Time
