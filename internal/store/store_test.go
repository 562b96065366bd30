package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVGetMissing(t *testing.T) {
	s := openTestStore(t)
	kv := s.KVRepo()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "usage_nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing key")
	}
}

func TestKVSetGetOverwrite(t *testing.T) {
	s := openTestStore(t)
	kv := s.KVRepo()
	ctx := context.Background()

	if err := kv.Set(ctx, "usage_u1", []byte(`{"count":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "usage_u1", []byte(`{"count":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := kv.Get(ctx, "usage_u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if string(v) != `{"count":2}` {
		t.Errorf("value = %q, want %q", v, `{"count":2}`)
	}
}

func TestKVDelete(t *testing.T) {
	s := openTestStore(t)
	kv := s.KVRepo()
	ctx := context.Background()

	if err := kv.Set(ctx, "usage_u2", []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Delete(ctx, "usage_u2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, ok, err := kv.Get(ctx, "usage_u2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected key gone after delete")
	}
}

func TestUsageEventsOrderedBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.AppendUsage(ctx, UsageEventData{
			UserID:     "u1",
			Feature:    "quiz",
			CountAfter: i,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryUsage(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}

	// Newest first.
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("events not descending: seq[%d]=%d seq[%d]=%d",
				i-1, events[i-1].Sequence, i, events[i].Sequence)
		}
	}
	if events[0].CountAfter != 3 {
		t.Errorf("newest count_after = %d, want 3", events[0].CountAfter)
	}
}

func TestUsageEventsFilterByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendUsage(ctx, UsageEventData{UserID: "a", Feature: "chat", CountAfter: 1}); err != nil {
		t.Fatalf("append a: %v", err)
	}
	if err := repo.AppendUsage(ctx, UsageEventData{UserID: "b", Feature: "chat", CountAfter: 1}); err != nil {
		t.Fatalf("append b: %v", err)
	}

	events, err := repo.QueryUsage(ctx, "a", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d, want 1", len(events))
	}
	if events[0].UserID != "a" {
		t.Errorf("user_id = %q, want %q", events[0].UserID, "a")
	}
}

func TestQuizEventLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	steps := []QuizEventData{
		{SessionID: "q1", Kind: "started", Subject: "physics", Topic: "gravitation-basics"},
		{SessionID: "q1", Kind: "answered", QuestionIndex: 0, Correct: true},
		{SessionID: "q1", Kind: "completed", Score: 1, Total: 1},
	}
	for i, step := range steps {
		if err := repo.AppendQuizEvent(ctx, step); err != nil {
			t.Fatalf("append step %d: %v", i, err)
		}
	}

	count, err := s.Client().QuizEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("quiz events = %d, want 3", count)
	}
}

func TestChatHistoryInOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	msgs := []ChatEventData{
		{SessionID: "c1", Flow: "tutor", Role: "assistant", Content: "welcome"},
		{SessionID: "c1", Flow: "tutor", Role: "user", Content: "what is torque?"},
		{SessionID: "c1", Flow: "tutor", Role: "assistant", Content: "torque is..."},
	}
	for i, m := range msgs {
		if err := repo.AppendChat(ctx, m); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	// A different session should not leak in.
	if err := repo.AppendChat(ctx, ChatEventData{SessionID: "c2", Flow: "planner", Role: "user", Content: "other"}); err != nil {
		t.Fatalf("append other: %v", err)
	}

	hist, err := repo.ChatHistory(ctx, "c1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 3 {
		t.Fatalf("len = %d, want 3", len(hist))
	}
	for i, m := range msgs {
		if hist[i].Content != m.Content {
			t.Errorf("hist[%d].content = %q, want %q", i, hist[i].Content, m.Content)
		}
		if hist[i].Role != m.Role {
			t.Errorf("hist[%d].role = %q, want %q", i, hist[i].Role, m.Role)
		}
	}
}

func TestPlanSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	// No plan yet.
	rec, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil plan when none exist")
	}

	for i, id := range []string{"p1", "p2"} {
		err := repo.Save(ctx, PlanRecord{
			PlanID:   id,
			UserID:   "u1",
			Document: []byte(`{"title":"plan ` + id + `"}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	rec, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil plan")
	}
	// created_at has second granularity in SQLite; either plan is
	// acceptable only if ordering ties, so check the stored user.
	if rec.UserID != "u1" {
		t.Errorf("user_id = %q, want %q", rec.UserID, "u1")
	}
}

func TestContentCachePutGetReplace(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "gravitation-basics", "learn")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}

	if err := repo.Put(ctx, "gravitation-basics", "learn", "v1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, "gravitation-basics", "learn", "v2"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	// Same topic, different mode is a separate entry.
	if err := repo.Put(ctx, "gravitation-basics", "revise", "r1"); err != nil {
		t.Fatalf("put revise: %v", err)
	}

	got, ok, err := repo.Get(ctx, "gravitation-basics", "learn")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != "v2" {
		t.Errorf("learn content = %q ok=%v, want %q ok=true", got, ok, "v2")
	}

	got, ok, err = repo.Get(ctx, "gravitation-basics", "revise")
	if err != nil {
		t.Fatalf("get revise: %v", err)
	}
	if !ok || got != "r1" {
		t.Errorf("revise content = %q ok=%v, want %q ok=true", got, ok, "r1")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendUsage(ctx, UsageEventData{UserID: "u", Feature: "chat", CountAfter: 1}); err != nil {
		t.Fatalf("append usage: %v", err)
	}
	if err := repo.AppendChat(ctx, ChatEventData{SessionID: "c", Flow: "tutor", Role: "user", Content: "hi"}); err != nil {
		t.Fatalf("append chat: %v", err)
	}

	usage, err := repo.QueryUsage(ctx, "u", QueryOpts{})
	if err != nil {
		t.Fatalf("query usage: %v", err)
	}
	hist, err := repo.ChatHistory(ctx, "c")
	if err != nil {
		t.Fatalf("chat history: %v", err)
	}
	if len(usage) != 1 || len(hist) != 1 {
		t.Fatalf("usage=%d chat=%d, want 1 each", len(usage), len(hist))
	}
	if hist[0].Sequence <= usage[0].Sequence {
		t.Errorf("chat sequence %d not after usage sequence %d",
			hist[0].Sequence, usage[0].Sequence)
	}
}
