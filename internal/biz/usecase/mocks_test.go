package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
)

// memStore is an in-memory KeyValueStore with switchable failure modes
type memStore struct {
	mu       sync.Mutex
	values   map[string][]byte
	failGet  bool
	failSet  bool
	setCalls int
}

func newMemStore() *memStore {
	return &memStore{values: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return nil, errors.New("store: get failed")
	}
	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls++
	if s.failSet {
		return errors.New("store: set failed")
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

func (s *memStore) Close() error { return nil }

// mockSafety records calls and returns a configured verdict or error
type mockSafety struct {
	mu      sync.Mutex
	verdict domain.Verdict
	err     error
	calls   int
	onCheck func()
}

func (m *mockSafety) Check(_ context.Context, _ string) (domain.Verdict, error) {
	m.mu.Lock()
	m.calls++
	fn := m.onCheck
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
	return m.verdict, m.err
}

func (m *mockSafety) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func safeVerdict() domain.Verdict {
	return domain.Verdict{Safe: true}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func neverSlow() bool { return false }

func nopLog() zerolog.Logger { return zerolog.Nop() }
