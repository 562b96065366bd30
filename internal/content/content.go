// Package content fetches AI study content for syllabus topics, with a
// local cache and a static fallback for offline use.
package content

import (
	"context"
	"fmt"
	"os"

	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/usage"
)

// Feature is the quota feature name charged per backend generation.
const Feature = "content_generation"

// Mode selects which rendition of a topic's content to show.
type Mode string

const (
	ModeLearn  Mode = "learn"
	ModeRevise Mode = "revise"
)

// Source reports where a piece of content came from.
type Source string

const (
	SourceBackend  Source = "backend"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Result is the generated content for one topic, both modes.
type Result struct {
	Learn  string
	Revise string
	Source Source
}

// Quota gates quota-consuming actions. Satisfied by *usage.Tracker.
type Quota interface {
	TryConsume(ctx context.Context, user auth.User, feature string) bool
}

// Cache stores fetched content per topic and mode. Satisfied by
// store.ContentRepo.
type Cache interface {
	Get(ctx context.Context, topicID, mode string) (string, bool, error)
	Put(ctx context.Context, topicID, mode, content string) error
}

// Service generates study content. A cache hit is free; a backend call
// charges one quota use. When the backend is unreachable the static
// fallback text is returned uncached, so the next visit retries.
type Service struct {
	backend api.Backend
	quota   Quota
	cache   Cache // optional
}

// NewService creates a content Service. cache may be nil to disable
// caching.
func NewService(backend api.Backend, quota Quota, cache Cache) *Service {
	return &Service{backend: backend, quota: quota, cache: cache}
}

// Generate returns the content for a topic. Returns
// usage.ErrQuotaExceeded when a backend call would be needed and the
// user is out of quota.
func (s *Service) Generate(ctx context.Context, user auth.User, ref syllabus.TopicRef) (Result, error) {
	if cached, ok := s.fromCache(ctx, ref.Topic.ID); ok {
		return cached, nil
	}

	if !s.quota.TryConsume(ctx, user, Feature) {
		return Result{}, usage.ErrQuotaExceeded
	}

	payload, err := s.backend.GenerateContent(ctx, api.GenerateContentRequest{
		UserID:  user.ID,
		Subject: ref.Subject,
		Chapter: ref.Chapter,
		Topic:   ref.Topic.Name,
	})
	if err != nil || payload.Learn == "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: generate content: %v\n", err)
		}
		return fallbackResult(ref), nil
	}

	s.toCache(ctx, ref.Topic.ID, payload)
	return Result{
		Learn:  payload.Learn,
		Revise: payload.Revise,
		Source: SourceBackend,
	}, nil
}

func (s *Service) fromCache(ctx context.Context, topicID string) (Result, bool) {
	if s.cache == nil {
		return Result{}, false
	}
	learn, ok, err := s.cache.Get(ctx, topicID, string(ModeLearn))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read content cache: %v\n", err)
		return Result{}, false
	}
	if !ok {
		return Result{}, false
	}
	revise, ok, err := s.cache.Get(ctx, topicID, string(ModeRevise))
	if err != nil || !ok {
		return Result{}, false
	}
	return Result{Learn: learn, Revise: revise, Source: SourceCache}, true
}

func (s *Service) toCache(ctx context.Context, topicID string, payload api.ContentPayload) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, topicID, string(ModeLearn), payload.Learn); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache content: %v\n", err)
		return
	}
	if err := s.cache.Put(ctx, topicID, string(ModeRevise), payload.Revise); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache content: %v\n", err)
	}
}

func fallbackResult(ref syllabus.TopicRef) Result {
	return Result{
		Learn:  FallbackLearn(ref.Subject, ref.Chapter, ref.Topic.Name),
		Revise: FallbackRevise(ref.Topic.Name),
		Source: SourceFallback,
	}
}
