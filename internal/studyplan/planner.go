// Package studyplan runs the study-plan chat flow and turns the
// conversation into a persisted weekly plan.
package studyplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/usage"
)

// Quota feature names, one per gated action.
const (
	FeatureChat     = "study_plan_chat"
	FeatureGenerate = "study_plan_generation"
)

// contextWindow is how many prior messages accompany each chat turn.
const contextWindow = 5

// minMessages is the transcript length required before a plan can be
// generated; below it the conversation can't say anything useful.
const minMessages = 3

// ErrNeedMoreContext is returned by GeneratePlan when the conversation
// is too short to generate from.
var ErrNeedMoreContext = errors.New("chat a bit more before generating a plan")

// Role identifies a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one planning chat turn.
type Message struct {
	Role    Role
	Content string
	At      time.Time
}

// Quota gates quota-consuming actions. Satisfied by *usage.Tracker.
type Quota interface {
	TryConsume(ctx context.Context, user auth.User, feature string) bool
}

// Recorder receives chat messages for the local activity log.
// Satisfied by store.EventRepo.
type Recorder interface {
	AppendChat(ctx context.Context, data store.ChatEventData) error
}

// Plans persists generated plans. Satisfied by store.PlanRepo.
type Plans interface {
	Save(ctx context.Context, rec store.PlanRecord) error
	Latest(ctx context.Context, userID string) (*store.PlanRecord, error)
}

// Planner is one study-planning session: a chat plus the plan generated
// from it. Not safe for concurrent use.
type Planner struct {
	backend api.Backend
	quota   Quota
	events  Recorder // optional
	plans   Plans    // optional
	user    auth.User

	sessionID string
	messages  []Message
	current   *api.StudyPlan

	// now is the clock for message timestamps. Overridden in tests.
	now func() time.Time
}

// NewPlanner starts a planning session seeded with the welcome message.
func NewPlanner(backend api.Backend, quota Quota, events Recorder, plans Plans, user auth.User) *Planner {
	p := &Planner{
		backend:   backend,
		quota:     quota,
		events:    events,
		plans:     plans,
		user:      user,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	p.append(context.Background(), RoleAssistant, WelcomeMessage)
	return p
}

// SessionID returns the session identifier for the activity log.
func (p *Planner) SessionID() string { return p.sessionID }

// Messages returns the transcript, oldest first.
func (p *Planner) Messages() []Message { return p.messages }

// CurrentPlan returns the plan generated in (or restored into) this
// session, or nil.
func (p *Planner) CurrentPlan() *api.StudyPlan { return p.current }

// RestoreLatest loads the user's most recent persisted plan into the
// session. A missing plan is not an error.
func (p *Planner) RestoreLatest(ctx context.Context) error {
	if p.plans == nil {
		return nil
	}
	rec, err := p.plans.Latest(ctx, p.user.ID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	var plan api.StudyPlan
	if err := json.Unmarshal(rec.Document, &plan); err != nil {
		return fmt.Errorf("decode plan %s: %w", rec.PlanID, err)
	}
	p.current = &plan
	return nil
}

// Send submits one student turn and returns the planner's reply.
// Returns usage.ErrQuotaExceeded without touching the transcript when
// the user is out of quota. A backend failure yields a canned reply,
// never an error.
func (p *Planner) Send(ctx context.Context, text string) (Message, error) {
	if !p.quota.TryConsume(ctx, p.user, FeatureChat) {
		return Message{}, usage.ErrQuotaExceeded
	}

	history := p.contextWindow()
	p.append(ctx, RoleUser, text)

	reply, err := p.backend.StudyPlanChat(ctx, api.StudyPlanChatRequest{
		UserID:      p.user.ID,
		Message:     text,
		Context:     history,
		CurrentPlan: p.current,
	})
	if err != nil || reply == "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: plan chat: %v\n", err)
		}
		reply = FallbackReply(text)
	}

	return p.append(ctx, RoleAssistant, reply), nil
}

// GeneratePlan turns the conversation into a weekly plan. The plan is
// persisted and becomes the session's current plan. A backend failure
// yields the static fallback plan, never an error.
func (p *Planner) GeneratePlan(ctx context.Context) (*api.StudyPlan, error) {
	if len(p.messages) < minMessages {
		return nil, ErrNeedMoreContext
	}
	if !p.quota.TryConsume(ctx, p.user, FeatureGenerate) {
		return nil, usage.ErrQuotaExceeded
	}

	history := make([]api.ContextMessage, 0, len(p.messages))
	for _, m := range p.messages {
		history = append(history, api.ContextMessage{Type: string(m.Role), Content: m.Content})
	}

	plan, err := p.backend.GenerateStudyPlan(ctx, api.GenerateStudyPlanRequest{
		UserID:      p.user.ID,
		ChatHistory: history,
		Preferences: api.PlanPreferences{
			Subjects:  []string{"Physics", "Chemistry", "Mathematics"},
			Duration:  "flexible",
			Intensity: "high",
		},
	})
	if err != nil || len(plan.Schedule) == 0 {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: generate plan: %v\n", err)
		}
		plan = FallbackPlan(p.now())
	}
	if plan.ID == "" {
		plan.ID = "plan_" + uuid.NewString()
	}

	p.persist(ctx, plan)
	p.current = &plan
	return p.current, nil
}

func (p *Planner) persist(ctx context.Context, plan api.StudyPlan) {
	if p.plans == nil {
		return
	}
	doc, err := json.Marshal(plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: encode plan: %v\n", err)
		return
	}
	err = p.plans.Save(ctx, store.PlanRecord{
		PlanID:   plan.ID,
		UserID:   p.user.ID,
		Document: doc,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist plan: %v\n", err)
	}
}

func (p *Planner) contextWindow() []api.ContextMessage {
	msgs := p.messages
	if len(msgs) > contextWindow {
		msgs = msgs[len(msgs)-contextWindow:]
	}
	out := make([]api.ContextMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, api.ContextMessage{Type: string(m.Role), Content: m.Content})
	}
	return out
}

func (p *Planner) append(ctx context.Context, role Role, content string) Message {
	msg := Message{Role: role, Content: content, At: p.now()}
	p.messages = append(p.messages, msg)

	if p.events != nil {
		err := p.events.AppendChat(ctx, store.ChatEventData{
			SessionID: p.sessionID,
			Flow:      "planner",
			Role:      string(role),
			Content:   content,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: record chat event: %v\n", err)
		}
	}
	return msg
}
