package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/praxisprep/praxis/internal/auth"
)

// Tracker gates and accounts for quota-consuming actions. The local
// key-value counter is authoritative; the Logger collaborator receives a
// best-effort copy of every granted consumption.
//
// All state is owned by a single UI session; the tracker does not attempt
// cross-device synchronization.
type Tracker struct {
	storage   Storage
	logger    Logger
	isPremium func(email string) bool
	limit     int

	// Now is the clock used for day boundaries and timestamps.
	// Overridden in tests.
	Now func() time.Time

	wg sync.WaitGroup
}

// NewTracker creates a Tracker over the given storage and usage-log
// collaborator. isPremium decides quota exemption; limit is the free
// daily limit.
func NewTracker(storage Storage, logger Logger, isPremium func(string) bool, limit int) *Tracker {
	if logger == nil {
		logger = NopLogger{}
	}
	if isPremium == nil {
		isPremium = func(string) bool { return false }
	}
	return &Tracker{
		storage:   storage,
		logger:    logger,
		isPremium: isPremium,
		limit:     limit,
		Now:       time.Now,
	}
}

// Status computes the user's current quota view. It has no side effects:
// a stale record is read as zero but not written back.
func (t *Tracker) Status(ctx context.Context, user auth.User) Status {
	if t.isPremium(user.Email) {
		return Status{
			UserType:      UserPremium,
			UsageCount:    0,
			UsageLimit:    premiumLimit,
			CanUseFeature: true,
			IsPremium:     true,
		}
	}

	now := t.Now()
	rec := t.load(ctx, user.ID)

	st := Status{
		UserType:   UserFree,
		UsageLimit: t.limit,
	}
	if sameDay(rec.Date, now) {
		st.UsageCount = rec.Count
		st.LastUsedAt = rec.LastUsedAt
	}
	if rec.LastUsedAt != nil {
		reset := rec.LastUsedAt.Add(24 * time.Hour)
		st.ResetTime = &reset
	}
	st.CanUseFeature = st.UsageCount < st.UsageLimit
	return st
}

// Refresh re-derives the status from persisted state. Used after external
// events such as a plan upgrade.
func (t *Tracker) Refresh(ctx context.Context, user auth.User) Status {
	return t.Status(ctx, user)
}

// TryConsume attempts to record one quota-consuming action. It returns
// false when the user is out of quota; in that case nothing is mutated.
// Premium users are always granted and never recorded.
//
// On a grant the local record is persisted first; the usage-log
// notification is fired afterwards and its outcome never reverses the
// grant.
func (t *Tracker) TryConsume(ctx context.Context, user auth.User, feature string) bool {
	return t.TryConsumeSession(ctx, user, feature, "")
}

// TryConsumeSession is TryConsume with a session ID attached to the
// usage-log entry.
func (t *Tracker) TryConsumeSession(ctx context.Context, user auth.User, feature, sessionID string) bool {
	if t.isPremium(user.Email) {
		return true
	}

	now := t.Now()
	rec := t.load(ctx, user.ID)

	count := 0
	if sameDay(rec.Date, now) {
		count = rec.Count
	}
	if count >= t.limit {
		return false
	}

	// Day changed: the new count starts at 1, not old+1.
	updated := Record{
		Date:       formatDay(now),
		Count:      count + 1,
		LastUsedAt: &now,
	}
	raw, err := json.Marshal(updated)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: encode usage record: %v\n", err)
		return false
	}
	if err := t.storage.Set(ctx, Key(user.ID), raw); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist usage record: %v\n", err)
		return false
	}

	entry := LogEntry{
		UserID:    user.ID,
		Feature:   feature,
		SessionID: sessionID,
		Timestamp: now,
		Count:     updated.Count,
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		// Detached from the caller's context: the notification must not
		// be cancelled along with the triggering action.
		if err := t.logger.LogUsage(context.Background(), entry); err != nil {
			fmt.Fprintf(os.Stderr, "warning: usage log failed: %v\n", err)
		}
	}()

	return true
}

// Flush waits for in-flight usage-log notifications. Called on shutdown
// and in tests.
func (t *Tracker) Flush() {
	t.wg.Wait()
}

// load reads the user's record. Absent, unreadable, or malformed records
// are all treated as a zero record.
func (t *Tracker) load(ctx context.Context, userID string) Record {
	raw, ok, err := t.storage.Get(ctx, Key(userID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read usage record: %v\n", err)
		return Record{}
	}
	if !ok {
		return Record{}
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}
	}
	if rec.Count < 0 {
		rec.Count = 0
	}
	return rec
}
