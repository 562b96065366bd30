package usage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/praxisprep/praxis/internal/auth"
)

var (
	freeUser    = auth.User{ID: "u1", Email: "student@example.com"}
	premiumUser = auth.User{ID: "p1", Email: "pro@example.com"}
)

func premiumSet(emails ...string) func(string) bool {
	set := make(map[string]bool, len(emails))
	for _, e := range emails {
		set[e] = true
	}
	return func(email string) bool { return set[email] }
}

// newTestTracker returns a tracker with limit 5, an in-memory store, and a
// fixed clock the test can move.
func newTestTracker(t *testing.T) (*Tracker, *InMemStorage, *time.Time) {
	t.Helper()
	storage := NewInMemStorage()
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	tr := NewTracker(storage, nil, premiumSet(premiumUser.Email), 5)
	tr.Now = func() time.Time { return now }
	return tr, storage, &now
}

func TestStatusFreshUser(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	st := tr.Status(context.Background(), freeUser)

	if st.UserType != UserFree {
		t.Errorf("UserType = %q, want free", st.UserType)
	}
	if st.UsageCount != 0 {
		t.Errorf("UsageCount = %d, want 0", st.UsageCount)
	}
	if st.UsageLimit != 5 {
		t.Errorf("UsageLimit = %d, want 5", st.UsageLimit)
	}
	if !st.CanUseFeature {
		t.Error("fresh user should be able to use features")
	}
	if st.ResetTime != nil {
		t.Error("ResetTime should be nil before first use")
	}
}

func TestConsumeUntilLimit(t *testing.T) {
	tr, _, now := newTestTracker(t)
	ctx := context.Background()

	var lastGrant time.Time
	for i := 1; i <= 5; i++ {
		*now = now.Add(10 * time.Minute)
		if !tr.TryConsume(ctx, freeUser, "chat") {
			t.Fatalf("call %d should be granted", i)
		}
		lastGrant = *now
		if st := tr.Status(ctx, freeUser); st.UsageCount != i {
			t.Fatalf("after call %d: UsageCount = %d", i, st.UsageCount)
		}
	}

	// Sixth call is denied and the count does not overflow.
	if tr.TryConsume(ctx, freeUser, "chat") {
		t.Fatal("sixth call should be denied")
	}
	st := tr.Status(ctx, freeUser)
	if st.UsageCount != 5 {
		t.Errorf("UsageCount = %d, want 5", st.UsageCount)
	}
	if st.CanUseFeature {
		t.Error("CanUseFeature should be false at the limit")
	}
	if st.ResetTime == nil {
		t.Fatal("ResetTime should be set after use")
	}
	if want := lastGrant.Add(24 * time.Hour); !st.ResetTime.Equal(want) {
		t.Errorf("ResetTime = %v, want %v", st.ResetTime, want)
	}

	tr.Flush()
}

func TestStaleDateReadsAsZero(t *testing.T) {
	tr, storage, now := newTestTracker(t)
	ctx := context.Background()

	yesterday := now.Add(-24 * time.Hour)
	raw, _ := json.Marshal(Record{
		Date:       formatDay(yesterday),
		Count:      5,
		LastUsedAt: &yesterday,
	})
	storage.Put(Key(freeUser.ID), raw)

	st := tr.Status(ctx, freeUser)
	if st.UsageCount != 0 {
		t.Errorf("UsageCount = %d, want 0 for yesterday's record", st.UsageCount)
	}
	if !st.CanUseFeature {
		t.Error("stale record should not block usage")
	}
	// Reset time still derives from the stored last use.
	if st.ResetTime == nil || !st.ResetTime.Equal(yesterday.Add(24*time.Hour)) {
		t.Errorf("ResetTime = %v, want stored lastUsedAt+24h", st.ResetTime)
	}

	// The lazy reset is read-only: the stored record is untouched.
	got, ok, _ := storage.Get(ctx, Key(freeUser.ID))
	if !ok || string(got) != string(raw) {
		t.Error("Status must not write back the record")
	}
}

func TestDayBoundaryConsumeRestartsAtOne(t *testing.T) {
	tr, _, now := newTestTracker(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if !tr.TryConsume(ctx, freeUser, "quiz") {
			t.Fatalf("call %d should be granted", i+1)
		}
	}
	if tr.TryConsume(ctx, freeUser, "quiz") {
		t.Fatal("limit should be reached")
	}

	// Next calendar day: the counter starts over at 1, not old+1.
	*now = now.Add(24 * time.Hour)
	if !tr.TryConsume(ctx, freeUser, "quiz") {
		t.Fatal("new day should be granted")
	}
	if st := tr.Status(ctx, freeUser); st.UsageCount != 1 {
		t.Errorf("UsageCount = %d, want 1 after day rollover", st.UsageCount)
	}

	tr.Flush()
}

func TestPremiumNeverMutates(t *testing.T) {
	tr, storage, _ := newTestTracker(t)
	ctx := context.Background()

	for i := 0; i < 2000; i++ {
		if !tr.TryConsume(ctx, premiumUser, "chat") {
			t.Fatalf("premium call %d denied", i)
		}
	}

	if _, ok, _ := storage.Get(ctx, Key(premiumUser.ID)); ok {
		t.Error("premium consumption must not persist a record")
	}

	st := tr.Status(ctx, premiumUser)
	if st.UserType != UserPremium || !st.IsPremium {
		t.Errorf("status = %+v, want premium", st)
	}
	if !st.CanUseFeature {
		t.Error("premium user must always be able to use features")
	}
}

func TestMalformedRecordTreatedAsAbsent(t *testing.T) {
	tr, storage, _ := newTestTracker(t)
	ctx := context.Background()

	storage.Put(Key(freeUser.ID), []byte("{not json"))

	st := tr.Status(ctx, freeUser)
	if st.UsageCount != 0 || !st.CanUseFeature {
		t.Errorf("malformed record should read as zero, got %+v", st)
	}
	if !tr.TryConsume(ctx, freeUser, "chat") {
		t.Error("consume over a malformed record should be granted")
	}
	if st := tr.Status(ctx, freeUser); st.UsageCount != 1 {
		t.Errorf("UsageCount = %d, want 1", st.UsageCount)
	}

	tr.Flush()
}

func TestLoggerFailureDoesNotRevokeGrant(t *testing.T) {
	storage := NewInMemStorage()
	logger := &RecordingLogger{Err: errors.New("backend down")}
	tr := NewTracker(storage, logger, nil, 5)

	if !tr.TryConsume(context.Background(), freeUser, "deep_study_session") {
		t.Fatal("grant must stand regardless of the logger")
	}
	tr.Flush()

	if logger.Count() != 1 {
		t.Fatalf("logger called %d times, want 1", logger.Count())
	}
	if st := tr.Status(context.Background(), freeUser); st.UsageCount != 1 {
		t.Errorf("UsageCount = %d, want 1 after failed log", st.UsageCount)
	}
}

func TestLoggerReceivesEntry(t *testing.T) {
	storage := NewInMemStorage()
	logger := &RecordingLogger{}
	tr := NewTracker(storage, logger, nil, 5)
	fixed := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	tr.Now = func() time.Time { return fixed }

	if !tr.TryConsumeSession(context.Background(), freeUser, "study_plan_chat", "session-42") {
		t.Fatal("expected grant")
	}
	tr.Flush()

	if len(logger.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(logger.Entries))
	}
	e := logger.Entries[0]
	if e.UserID != freeUser.ID || e.Feature != "study_plan_chat" || e.SessionID != "session-42" {
		t.Errorf("entry = %+v", e)
	}
	if !e.Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", e.Timestamp, fixed)
	}
}

func TestStorageFailureDeniesGrant(t *testing.T) {
	storage := NewInMemStorage()
	storage.FailSet = errors.New("disk full")
	logger := &RecordingLogger{}
	tr := NewTracker(storage, logger, nil, 5)

	if tr.TryConsume(context.Background(), freeUser, "chat") {
		t.Error("grant requires the local counter to be durably updated")
	}
	tr.Flush()
	if logger.Count() != 0 {
		t.Error("no usage log without a grant")
	}
}

func TestNoConsumptionAtLimitLeavesNoLog(t *testing.T) {
	storage := NewInMemStorage()
	logger := &RecordingLogger{}
	tr := NewTracker(storage, logger, nil, 0)

	if tr.TryConsume(context.Background(), freeUser, "chat") {
		t.Error("zero limit should deny everything")
	}
	tr.Flush()
	if logger.Count() != 0 {
		t.Error("denied call must not be logged")
	}
}

func TestSameDay(t *testing.T) {
	noon := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		stored string
		now    time.Time
		want   bool
	}{
		{formatDay(noon), noon, true},
		{formatDay(noon), noon.Add(11 * time.Hour), true},
		{formatDay(noon), noon.Add(13 * time.Hour), false},
		{formatDay(noon.AddDate(0, 0, -1)), noon, false},
		{"", noon, false},
		{"garbage", noon, false},
	}
	for _, tt := range tests {
		if got := sameDay(tt.stored, tt.now); got != tt.want {
			t.Errorf("sameDay(%q, %v) = %v, want %v", tt.stored, tt.now, got, tt.want)
		}
	}
}

func TestRecordJSONLayout(t *testing.T) {
	at := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(Record{Date: formatDay(at), Count: 3, LastUsedAt: &at})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"date", "count", "lastUsedAt"} {
		if _, ok := m[k]; !ok {
			t.Errorf("missing JSON key %q", k)
		}
	}
	if m["date"] != "Mon Sep 15 2025" {
		t.Errorf("date = %v, want %q", m["date"], "Mon Sep 15 2025")
	}
}
