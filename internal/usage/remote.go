package usage

import (
	"context"
	"errors"
	"time"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/store"
)

// RemoteLogger mirrors granted consumptions to the backend's usage
// endpoint. Failures surface as errors to the tracker, which logs and
// ignores them.
type RemoteLogger struct {
	backend api.Backend
}

// NewRemoteLogger creates a RemoteLogger over the backend client.
func NewRemoteLogger(backend api.Backend) *RemoteLogger {
	return &RemoteLogger{backend: backend}
}

func (l *RemoteLogger) LogUsage(ctx context.Context, e LogEntry) error {
	_, err := l.backend.TrackUsage(ctx, api.TrackUsageRequest{
		UserID:      e.UserID,
		FeatureName: e.Feature,
		SessionID:   e.SessionID,
		Timestamp:   e.Timestamp.UTC().Format(time.RFC3339),
	})
	return err
}

// StoreLogger appends granted consumptions to the local activity log.
type StoreLogger struct {
	events store.EventRepo
}

// NewStoreLogger creates a StoreLogger over the event repository.
func NewStoreLogger(events store.EventRepo) *StoreLogger {
	return &StoreLogger{events: events}
}

func (l *StoreLogger) LogUsage(ctx context.Context, e LogEntry) error {
	return l.events.AppendUsage(ctx, store.UsageEventData{
		UserID:     e.UserID,
		Feature:    e.Feature,
		SessionID:  e.SessionID,
		CountAfter: e.Count,
	})
}

// MultiLogger fans an entry out to several loggers. Every logger sees
// the entry; their errors are joined.
type MultiLogger []Logger

func (m MultiLogger) LogUsage(ctx context.Context, e LogEntry) error {
	var errs []error
	for _, l := range m {
		if err := l.LogUsage(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
