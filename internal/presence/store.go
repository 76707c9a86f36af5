// Package presence tracks which users are currently online and emits the
// system notifications tied to presence transitions.
package presence

import (
	"sort"
	"sync"
	"time"
)

// DefaultTimeout is the heartbeat staleness window.
const DefaultTimeout = 2 * time.Minute

// Store is the single source of truth for "online": a lock-guarded map from
// user id to last heartbeat time. Construct one per process; it is never a
// package global, so tests can build isolated instances.
type Store struct {
	mu       sync.Mutex
	timeout  time.Duration
	sessions map[string]time.Time
}

func NewStore(timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{
		timeout:  timeout,
		sessions: make(map[string]time.Time),
	}
}

func (s *Store) Timeout() time.Duration { return s.timeout }

// Touch creates or refreshes the session for userID, overwriting any prior
// session. Reports whether a new session was created.
func (s *Store) Touch(userID string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.sessions[userID]
	s.sessions[userID] = now
	return !exists
}

// Remove deletes the session if present. Reports whether one existed.
func (s *Store) Remove(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.sessions[userID]
	delete(s.sessions, userID)
	return exists
}

// EvictStale removes every session whose last heartbeat is older than the
// timeout window and returns the evicted user ids. A heartbeat exactly at
// the window edge keeps the session.
func (s *Store) EvictStale(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked(now)
}

func (s *Store) evictLocked(now time.Time) []string {
	var evicted []string
	for userID, last := range s.sessions {
		if now.Sub(last) > s.timeout {
			delete(s.sessions, userID)
			evicted = append(evicted, userID)
		}
	}
	return evicted
}

// Active runs an eviction pass and returns the remaining user ids, sorted.
// Presence reads therefore never observe a session older than the window.
func (s *Store) Active(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked(now)

	ids := make([]string, 0, len(s.sessions))
	for userID := range s.sessions {
		ids = append(ids, userID)
	}
	sort.Strings(ids)
	return ids
}
