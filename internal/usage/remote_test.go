package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/praxisprep/praxis/internal/api"
)

func TestRemoteLoggerRequestShape(t *testing.T) {
	mock := api.NewMock()
	mock.TrackResults = []api.MockResult[api.TrackUsageResponse]{
		{Value: api.TrackUsageResponse{Success: true, UsageCount: 3, UsageLimit: 5}},
	}

	l := NewRemoteLogger(mock)
	at := time.Date(2025, 9, 15, 8, 30, 0, 0, time.UTC)
	err := l.LogUsage(context.Background(), LogEntry{
		UserID:    "u1",
		Feature:   "quiz_generation",
		SessionID: "s1",
		Timestamp: at,
		Count:     3,
	})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	if len(mock.TrackCalls) != 1 {
		t.Fatalf("track calls = %d, want 1", len(mock.TrackCalls))
	}
	req := mock.TrackCalls[0]
	if req.UserID != "u1" || req.FeatureName != "quiz_generation" || req.SessionID != "s1" {
		t.Errorf("request = %+v", req)
	}
	if req.Timestamp != "2025-09-15T08:30:00Z" {
		t.Errorf("timestamp = %q", req.Timestamp)
	}
}

func TestRemoteLoggerPropagatesError(t *testing.T) {
	mock := api.NewMock() // empty queue: call errors

	l := NewRemoteLogger(mock)
	if err := l.LogUsage(context.Background(), LogEntry{UserID: "u"}); err == nil {
		t.Fatal("expected an error from an unreachable backend")
	}
}

func TestMultiLoggerFansOutPastFailures(t *testing.T) {
	failing := &RecordingLogger{Err: errors.New("remote down")}
	healthy := &RecordingLogger{}

	m := MultiLogger{failing, healthy}
	err := m.LogUsage(context.Background(), LogEntry{UserID: "u"})
	if err == nil {
		t.Fatal("expected the joined error")
	}

	// The second logger still saw the entry.
	if healthy.Count() != 1 {
		t.Errorf("healthy logger entries = %d, want 1", healthy.Count())
	}
}
