package session

import (
	"context"
	"sync"
)

// MemoryStore keeps tokens per session ID in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Tokens
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Tokens)}
}

func (s *MemoryStore) Load(ctx context.Context) (Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[IDFromContext(ctx)], nil
}

func (s *MemoryStore) Save(ctx context.Context, t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[IDFromContext(ctx)] = t
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, IDFromContext(ctx))
	return nil
}

var _ Store = (*MemoryStore)(nil)
