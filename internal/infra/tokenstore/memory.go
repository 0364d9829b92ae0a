// Package tokenstore provides backends for the server-side refresh-token
// set. The memory store is the default and starts empty on every process
// restart, which invalidates all outstanding refresh tokens; the redis
// store survives restarts and is selected through configuration.
package tokenstore

import (
	"context"
	"sync"
	"time"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
)

// memoryStore keeps sessions in a mutex-guarded map. Remove deletes under
// the same lock that observes presence, so concurrent removals of one token
// resolve to exactly one winner.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]entity.RefreshSession
}

// NewMemoryStore creates an empty in-process refresh-token store.
func NewMemoryStore() repository.RefreshTokenStore {
	return &memoryStore{
		sessions: make(map[string]entity.RefreshSession),
	}
}

// Save records a session for the token, overwriting any previous value.
// Expired entries are swept opportunistically so the map does not grow
// without bound under churn.
func (s *memoryStore) Save(_ context.Context, token string, session entity.RefreshSession, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, existing := range s.sessions {
		if existing.ExpiresAt.Before(now) {
			delete(s.sessions, key)
		}
	}

	s.sessions[token] = session

	return nil
}

// Remove deletes the token's session, reporting whether this call removed
// it. A session past its expiry counts as absent.
func (s *memoryStore) Remove(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return false, nil
	}

	delete(s.sessions, token)

	if session.ExpiresAt.Before(time.Now()) {
		return false, nil
	}

	return true, nil
}
