package store

import (
	"context"
	"sync"
	"time"

	"intake-gateway/internal/wizard"
	"intake-gateway/pkg/platform/sentinel"
)

// MemoryStore is an in-process DraftStore for single-instance deployments
// and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]wizard.State
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStore returns an empty store. Drafts older than ttl are treated
// as absent; ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		drafts: make(map[string]wizard.State),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, state *wizard.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[state.ID] = sanitize(state)
	return nil
}

func (s *MemoryStore) Find(_ context.Context, id string) (*wizard.State, error) {
	s.mu.RLock()
	draft, ok := s.drafts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if expired(draft.UpdatedAt, s.ttl, s.now()) {
		s.mu.Lock()
		delete(s.drafts, id)
		s.mu.Unlock()
		return nil, sentinel.ErrNotFound
	}
	return &draft, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}
