// Package tutor runs the AI tutoring chat flow. Each chat is a single
// session against the backend, with canned replies when the backend is
// unreachable so the student is never left without an answer.
package tutor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/usage"
)

// Feature is the quota feature name charged per chat turn.
const Feature = "ai_interaction"

// contextWindow is how many prior messages accompany each turn.
const contextWindow = 5

// Role identifies a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role
	Content string
	At      time.Time
}

// Quota gates quota-consuming actions. Satisfied by *usage.Tracker.
type Quota interface {
	TryConsumeSession(ctx context.Context, user auth.User, feature, sessionID string) bool
}

// Recorder receives chat messages for the local activity log.
// Satisfied by store.EventRepo.
type Recorder interface {
	AppendChat(ctx context.Context, data store.ChatEventData) error
}

// Chat is one tutoring session. It owns the transcript and charges one
// quota use per student turn. Not safe for concurrent use.
type Chat struct {
	backend api.Backend
	quota   Quota
	events  Recorder // optional
	user    auth.User

	sessionID string
	messages  []Message

	// now is the clock for message timestamps. Overridden in tests.
	now func() time.Time
}

// NewChat starts a tutoring session seeded with the welcome message.
func NewChat(backend api.Backend, quota Quota, events Recorder, user auth.User) *Chat {
	c := &Chat{
		backend:   backend,
		quota:     quota,
		events:    events,
		user:      user,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	c.append(context.Background(), RoleAssistant, WelcomeMessage)
	return c
}

// SessionID returns the session identifier sent with every turn.
func (c *Chat) SessionID() string { return c.sessionID }

// Messages returns the transcript, oldest first.
func (c *Chat) Messages() []Message { return c.messages }

// Send submits one student turn and returns the tutor's reply. Returns
// usage.ErrQuotaExceeded without touching the transcript when the user
// is out of quota. A backend failure yields a canned reply, never an
// error.
func (c *Chat) Send(ctx context.Context, text string) (Message, error) {
	if !c.quota.TryConsumeSession(ctx, c.user, Feature, c.sessionID) {
		return Message{}, usage.ErrQuotaExceeded
	}

	history := c.contextWindow()
	c.append(ctx, RoleUser, text)

	reply, err := c.backend.Chat(ctx, api.ChatRequest{
		UserID:    c.user.ID,
		SessionID: c.sessionID,
		Message:   text,
		Context:   history,
	})
	if err != nil || reply == "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: tutor chat: %v\n", err)
		}
		reply = FallbackReply(text)
	}

	return c.append(ctx, RoleAssistant, reply), nil
}

// SolveImage submits a problem photo (base64) with an optional question
// and returns the worked solution. Quota and fallback behave as in Send.
func (c *Chat) SolveImage(ctx context.Context, imageData, question string) (Message, error) {
	if !c.quota.TryConsumeSession(ctx, c.user, Feature, c.sessionID) {
		return Message{}, usage.ErrQuotaExceeded
	}

	if question == "" {
		question = "Please solve this problem for me."
	}
	c.append(ctx, RoleUser, question)

	solution, err := c.backend.SolveImage(ctx, api.ImageSolveRequest{
		UserID:    c.user.ID,
		SessionID: c.sessionID,
		ImageData: imageData,
		Question:  question,
	})
	if err != nil || solution == "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: image solve: %v\n", err)
		}
		solution = ImageFallbackReply
	}

	return c.append(ctx, RoleAssistant, solution), nil
}

// contextWindow returns the trailing messages sent as conversation
// context with the next turn.
func (c *Chat) contextWindow() []api.ContextMessage {
	msgs := c.messages
	if len(msgs) > contextWindow {
		msgs = msgs[len(msgs)-contextWindow:]
	}
	out := make([]api.ContextMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, api.ContextMessage{
			Type:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}

// append adds a message to the transcript and the activity log.
func (c *Chat) append(ctx context.Context, role Role, content string) Message {
	msg := Message{Role: role, Content: content, At: c.now()}
	c.messages = append(c.messages, msg)

	if c.events != nil {
		err := c.events.AppendChat(ctx, store.ChatEventData{
			SessionID: c.sessionID,
			Flow:      "tutor",
			Role:      string(role),
			Content:   content,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: record chat event: %v\n", err)
		}
	}
	return msg
}
