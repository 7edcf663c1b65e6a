package repository

import (
	"context"
	"sync"

	interfaces "gpa-tracker/internal/interfaces/infrastructure"
)

// MemoryStore is an in-memory KVStore for tests and throwaway servers
type MemoryStore struct {
	values map[string]string
	mutex  sync.RWMutex
}

// NewMemoryStore creates a store pre-populated with seed, which may be nil
func NewMemoryStore(seed map[string]string) *MemoryStore {
	store := &MemoryStore{
		values: make(map[string]string, len(seed)),
	}
	for k, v := range seed {
		store.values[k] = v
	}
	return store
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, exists := s.values[key]
	if !exists {
		return "", interfaces.ErrKeyNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[key] = value
	return nil
}

// Snapshot returns a copy of every stored key and value
func (s *MemoryStore) Snapshot() map[string]string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) Health(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

var _ interfaces.KVStore = (*MemoryStore)(nil)
