package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tair/storefront/pkg/apperror"
)

type entry struct {
	userID    uint
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process. It serves single-instance
// runs without Redis and tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
}

// NewMemorySessionStore creates an empty store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]entry), now: time.Now}
}

func (s *MemorySessionStore) Create(_ context.Context, userID uint, ttl time.Duration) (string, error) {
	sid := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = entry{userID: userID, expiresAt: s.now().Add(ttl)}
	return sid, nil
}

func (s *MemorySessionStore) Resolve(_ context.Context, sessionID string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[sessionID]
	if !ok {
		return 0, apperror.Unauthorized()
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.sessions, sessionID)
		return 0, apperror.Unauthorized()
	}
	return e.userID, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
