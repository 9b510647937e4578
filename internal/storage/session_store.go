// Package storage holds the in-memory stores for running game sessions. Quiz
// and matching sessions never touch the database: they live here for the
// duration of a game and are evicted after a period of inactivity.
package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/arabicvocab/backend/internal/models"
)

// DefaultSessionTTL is how long an untouched session survives before the
// cleanup job evicts it.
const DefaultSessionTTL = 30 * time.Minute

type quizEntry struct {
	session  *models.QuizSession
	lastSeen time.Time
}

// QuizStore keeps active quiz sessions keyed by session ID.
type QuizStore struct {
	mu       sync.Mutex
	sessions map[string]*quizEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewQuizStore creates an empty quiz session store.
func NewQuizStore(ttl time.Duration) *QuizStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &QuizStore{
		sessions: make(map[string]*quizEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save stores or replaces a session.
func (s *QuizStore) Save(session *models.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &quizEntry{session: session, lastSeen: s.now()}
}

// Get returns the session with the given ID and refreshes its eviction clock.
func (s *QuizStore) Get(id string) (*models.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("quiz session not found")
	}
	entry.lastSeen = s.now()
	return entry.session, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *QuizStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *QuizStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (s *QuizStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

type matchEntry struct {
	session  *models.MatchSession
	lastSeen time.Time
}

// MatchStore keeps active matching game sessions keyed by session ID.
type MatchStore struct {
	mu       sync.Mutex
	sessions map[string]*matchEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMatchStore creates an empty matching session store.
func NewMatchStore(ttl time.Duration) *MatchStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &MatchStore{
		sessions: make(map[string]*matchEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save stores or replaces a session.
func (s *MatchStore) Save(session *models.MatchSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &matchEntry{session: session, lastSeen: s.now()}
}

// Get returns the session with the given ID and refreshes its eviction clock.
func (s *MatchStore) Get(id string) (*models.MatchSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("match session not found")
	}
	entry.lastSeen = s.now()
	return entry.session, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *MatchStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *MatchStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (s *MatchStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
