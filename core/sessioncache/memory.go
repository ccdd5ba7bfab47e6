package sessioncache

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory profile cache for tests and hosts without a
// writable data directory.
type MemoryStore struct {
	mu     sync.RWMutex
	job    string
	resume string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) PutProfile(_ context.Context, job, resume string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = job
	s.resume = resume
	return nil
}

func (s *MemoryStore) Profile(_ context.Context) (string, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.job, s.resume, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = ""
	s.resume = ""
	return nil
}
