package usage

import (
	"context"
	"sync"
)

// Storage is the key-value store the tracker persists records into.
// The production implementation is backed by the local SQLite store;
// tests use InMemStorage.
type Storage interface {
	// Get returns the raw value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores the raw value for key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

// InMemStorage is a map-backed Storage for tests.
type InMemStorage struct {
	mu sync.Mutex
	m  map[string][]byte

	// FailSet, when set, is returned by every Set call.
	FailSet error
}

// NewInMemStorage creates an empty in-memory storage.
func NewInMemStorage() *InMemStorage {
	return &InMemStorage{m: make(map[string][]byte)}
}

func (s *InMemStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *InMemStorage) Set(_ context.Context, key string, value []byte) error {
	if s.FailSet != nil {
		return s.FailSet
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// Put seeds a raw value, bypassing FailSet. Test helper.
func (s *InMemStorage) Put(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}
