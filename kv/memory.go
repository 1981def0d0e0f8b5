package kv

import (
	"context"
	"sync"
)

// MemoryStore defines a public type used by soilauth APIs.
//
// MemoryStore is a map-backed [Store] for tests and examples. It mirrors the
// mocked async storage the mobile client shipped with: no expiry, no
// persistence across process restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore creates an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]string),
	}
}

// GetItem returns the stored value or [ErrNotFound].
func (s *MemoryStore) GetItem(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

// SetItem stores value under key, overwriting any existing value.
func (s *MemoryStore) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (s *MemoryStore) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

// Len reports the number of stored items.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
