package sessionlog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. It is intended for
// development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session
	byUser   map[string]map[uuid.UUID]struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]Session),
		byUser:   make(map[string]map[uuid.UUID]struct{}),
	}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[s.ID]; exists {
		return ErrInvalidSession
	}
	m.sessions[s.ID] = *s
	ids, ok := m.byUser[s.UserID]
	if !ok {
		ids = make(map[uuid.UUID]struct{})
		m.byUser[s.UserID] = ids
	}
	ids[s.ID] = struct{}{}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Touch(_ context.Context, id uuid.UUID, meta Metadata, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.apply(meta, at)
	m.sessions[id] = s
	return nil
}

func (m *MemoryStore) ListByUser(_ context.Context, userID string) ([]Session, error) {
	m.mu.RLock()
	ids := m.byUser[userID]
	out := make([]Session, 0, len(ids))
	for id := range ids {
		out = append(out, m.sessions[id])
	}
	m.mu.RUnlock()

	sortByAccess(out)
	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil
	}
	delete(m.sessions, id)
	if ids := m.byUser[s.UserID]; ids != nil {
		delete(ids, id)
		if len(ids) == 0 {
			delete(m.byUser, s.UserID)
		}
	}
	return nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
