// internal/service/session_store.go
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore holds login sessions. The interface keeps the backing store
// swappable; the default memory implementation means sessions reset on
// restart, which is acceptable for a single local user.
type SessionStore interface {
	Create(ttl time.Duration) string
	Validate(token string) bool
	Delete(token string)
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]time.Time)}
}

func (s *memorySessionStore) Create(ttl time.Duration) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = time.Now().Add(ttl)
	return token
}

func (s *memorySessionStore) Validate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}

func (s *memorySessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
