package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/usage"
)

type grantAll struct{ calls int }

func (g *grantAll) TryConsume(context.Context, auth.User, string) bool {
	g.calls++
	return true
}

type denyAll struct{}

func (denyAll) TryConsume(context.Context, auth.User, string) bool { return false }

// memCache is a map-backed Cache for tests.
type memCache struct {
	entries map[string]string
	getErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]string{}}
}

func (c *memCache) Get(_ context.Context, topicID, mode string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.entries[topicID+"/"+mode]
	return v, ok, nil
}

func (c *memCache) Put(_ context.Context, topicID, mode, content string) error {
	c.entries[topicID+"/"+mode] = content
	return nil
}

func testRef(t *testing.T) syllabus.TopicRef {
	t.Helper()
	ref, err := syllabus.FindTopic("gravitation-basics")
	if err != nil {
		t.Fatalf("find topic: %v", err)
	}
	return ref
}

func TestGenerateFromBackendAndCache(t *testing.T) {
	mock := api.NewMock()
	mock.ContentResponses = []api.MockResult[api.ContentPayload]{
		{Value: api.ContentPayload{Learn: "learn text", Revise: "revise text"}},
	}
	quota := &grantAll{}
	cache := newMemCache()

	svc := NewService(mock, quota, cache)
	ctx := context.Background()
	ref := testRef(t)

	res, err := svc.Generate(ctx, auth.DemoUser(), ref)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Source != SourceBackend {
		t.Errorf("source = %q, want backend", res.Source)
	}
	if res.Learn != "learn text" || res.Revise != "revise text" {
		t.Errorf("content = %+v", res)
	}
	if quota.calls != 1 {
		t.Errorf("quota calls = %d, want 1", quota.calls)
	}

	// Second visit is served from the cache: no quota, no backend.
	res, err = svc.Generate(ctx, auth.DemoUser(), ref)
	if err != nil {
		t.Fatalf("generate cached: %v", err)
	}
	if res.Source != SourceCache {
		t.Errorf("source = %q, want cache", res.Source)
	}
	if res.Learn != "learn text" {
		t.Errorf("cached learn = %q", res.Learn)
	}
	if quota.calls != 1 {
		t.Errorf("quota calls = %d after cache hit, want 1", quota.calls)
	}
	if len(mock.ContentCalls) != 1 {
		t.Errorf("backend calls = %d, want 1", len(mock.ContentCalls))
	}
}

func TestGenerateQuotaDenied(t *testing.T) {
	mock := api.NewMock()
	svc := NewService(mock, denyAll{}, nil)

	_, err := svc.Generate(context.Background(), auth.DemoUser(), testRef(t))
	if !errors.Is(err, usage.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}
	if len(mock.ContentCalls) != 0 {
		t.Errorf("backend calls = %d, want 0", len(mock.ContentCalls))
	}
}

func TestGenerateFallbackOnBackendError(t *testing.T) {
	mock := api.NewMock() // empty queue: call errors
	cache := newMemCache()

	svc := NewService(mock, &grantAll{}, cache)
	res, err := svc.Generate(context.Background(), auth.DemoUser(), testRef(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Source != SourceFallback {
		t.Errorf("source = %q, want fallback", res.Source)
	}
	if !strings.Contains(res.Learn, "Newton's Law of Gravitation") {
		t.Error("fallback learn text missing topic name")
	}
	if !strings.Contains(res.Revise, "Quick Revision") {
		t.Error("fallback revise text missing revision header")
	}

	// Fallback content is not cached, so the next visit retries.
	if len(cache.entries) != 0 {
		t.Errorf("cache entries = %d, want 0", len(cache.entries))
	}
}

func TestCacheReadErrorFallsThroughToBackend(t *testing.T) {
	mock := api.NewMock()
	mock.ContentResponses = []api.MockResult[api.ContentPayload]{
		{Value: api.ContentPayload{Learn: "fresh", Revise: "fresh r"}},
	}
	cache := newMemCache()
	cache.getErr = errors.New("corrupt cache")

	svc := NewService(mock, &grantAll{}, cache)
	res, err := svc.Generate(context.Background(), auth.DemoUser(), testRef(t))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Source != SourceBackend {
		t.Errorf("source = %q, want backend", res.Source)
	}
}

func TestFallbackTextMentionsChapter(t *testing.T) {
	learn := FallbackLearn("Physics", "Gravitation", "Kepler's Laws")
	for _, want := range []string{"Kepler's Laws", "Physics", `"Gravitation"`} {
		if !strings.Contains(learn, want) {
			t.Errorf("fallback learn missing %q", want)
		}
	}
}
