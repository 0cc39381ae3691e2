package data

import (
	"context"
	"sync"

	"github.com/fsociety-space/fsociety-core/internal/biz/repo"
)

// memoryStore is the in-memory key-value fallback used when the on-disk
// store cannot be opened. State lasts for the session only.
type memoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStore creates an in-memory key-value store
func NewMemoryStore() repo.KeyValueStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
