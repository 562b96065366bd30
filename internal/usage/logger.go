package usage

import (
	"context"
	"sync"
	"time"
)

// LogEntry describes one quota-consuming action for the usage-logging
// collaborator.
type LogEntry struct {
	UserID    string
	Feature   string
	SessionID string
	Timestamp time.Time

	// Count is the daily usage count after this grant.
	Count int
}

// Logger is the one-way usage-log collaborator. LogUsage is best-effort:
// the tracker never propagates its error and never reverses a granted
// consumption because of it.
type Logger interface {
	LogUsage(ctx context.Context, e LogEntry) error
}

// NopLogger discards all entries.
type NopLogger struct{}

func (NopLogger) LogUsage(context.Context, LogEntry) error { return nil }

// RecordingLogger captures entries for tests. Its Err, when set, is
// returned from every call.
type RecordingLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
	Err     error
}

func (l *RecordingLogger) LogUsage(_ context.Context, e LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, e)
	return l.Err
}

// Count returns the number of logged entries.
func (l *RecordingLogger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Entries)
}
