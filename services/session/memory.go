package session

import (
	"context"
	"sync"
	"time"

	"legalease/models"
)

// MemoryStore keeps sessions in a process-local map. Each session is
// evicted by a timer when its TTL elapses; Put on an existing session
// does not reset the timer.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.UserSession
	timers   map[string]*time.Timer
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.UserSession),
		timers:   make(map[string]*time.Timer),
		ttl:      ttl,
	}
}

func (s *MemoryStore) Put(ctx context.Context, session *models.UserSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.sessions[session.ID]
	s.sessions[session.ID] = session
	if !existed {
		id := session.ID
		s.timers[id] = time.AfterFunc(s.ttl, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.sessions, id)
			delete(s.timers, id)
		})
	}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*models.UserSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	copied.Queries = append([]models.SessionQuery(nil), session.Queries...)
	return &copied, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	if t, ok := s.timers[sessionID]; ok {
		t.Stop()
		delete(s.timers, sessionID)
	}
	delete(s.sessions, sessionID)
	return nil
}
