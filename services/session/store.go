package session

import (
	"context"
	"sync"
	"time"

	"lamaison/models"
)

// Store keeps per-session conversation state between turns. A missing
// session is not an error: Get returns a fresh idle state so the first
// turn of a conversation needs no setup call.
type Store interface {
	Get(ctx context.Context, sessionID string) (models.ConversationState, error)
	Set(ctx context.Context, sessionID string, state models.ConversationState) error
	Clear(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	state     models.ConversationState
	expiresAt time.Time
}

// MemoryStore is the in-process Store used in single-instance deployments
// and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (models.ConversationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return models.NewConversationState(), nil
	}
	return entry.state, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID string, state models.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		state:     state,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}
