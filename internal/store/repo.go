package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// KVRepo is a small key/value surface for JSON records that must survive
// restarts, such as per-user daily usage counters. Get reports presence
// separately from errors so a missing key is not an error.
type KVRepo interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UsageEventData captures a single granted use of an AI feature.
type UsageEventData struct {
	UserID     string
	Feature    string
	SessionID  string
	CountAfter int
}

// QuizEventData captures one step of a quiz session's lifecycle.
// Kind is one of "started", "answered", "completed"; the optional
// fields apply per kind.
type QuizEventData struct {
	SessionID     string
	Kind          string
	Subject       string
	Topic         string
	QuestionIndex int
	Correct       bool
	Score         int
	Total         int
}

// ChatEventData captures one message in a chat flow.
// Flow is "tutor" or "planner"; Role is "user" or "assistant".
type ChatEventData struct {
	SessionID string
	Flow      string
	Role      string
	Content   string
}

// UsageEventRecord is a persisted usage event with its ordering fields.
type UsageEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	UsageEventData
}

// ChatEventRecord is a persisted chat message with its ordering fields.
type ChatEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ChatEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendUsage records a granted feature use.
	AppendUsage(ctx context.Context, data UsageEventData) error

	// AppendQuizEvent records a quiz lifecycle step.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendChat records a chat message.
	AppendChat(ctx context.Context, data ChatEventData) error

	// QueryUsage returns usage events for a user, newest first.
	QueryUsage(ctx context.Context, userID string, opts QueryOpts) ([]UsageEventRecord, error)

	// ChatHistory returns the messages of one chat session in order.
	ChatHistory(ctx context.Context, sessionID string) ([]ChatEventRecord, error)
}

// PlanRecord is a persisted study plan document.
type PlanRecord struct {
	PlanID    string
	UserID    string
	Document  []byte
	CreatedAt time.Time
}

// PlanRepo stores generated study plans.
type PlanRepo interface {
	// Save stores a new plan.
	Save(ctx context.Context, rec PlanRecord) error

	// Latest returns the most recent plan for a user, or nil if none exist.
	Latest(ctx context.Context, userID string) (*PlanRecord, error)
}

// ContentRepo caches generated study content per topic and mode.
type ContentRepo interface {
	// Get returns the cached content, or ok=false if absent.
	Get(ctx context.Context, topicID, mode string) (content string, ok bool, err error)

	// Put stores content, replacing any previous entry for the pair.
	Put(ctx context.Context, topicID, mode, content string) error
}
