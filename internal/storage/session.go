package storage

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

// SessionStorage provides in-memory storage for player sessions by player key.
// Every lookup refreshes the session's last access time so idle sessions can be swept.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

type entry struct {
	sess     *service.Session
	lastSeen time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Get retrieves the session of a player.
func (s *SessionStorage) Get(key string) (*service.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[key]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.sess, true
}

// LoadOrStore returns the existing session for key if present.
// Otherwise it stores sess and returns it. loaded is true if the session existed.
func (s *SessionStorage) LoadOrStore(key string, sess *service.Session) (*service.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[key]; ok {
		e.lastSeen = s.now()
		return e.sess, true
	}
	s.sessions[key] = &entry{sess: sess, lastSeen: s.now()}
	return sess, false
}

// Delete removes the session of a player.
func (s *SessionStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions not accessed for longer than idle and returns how many were dropped.
func (s *SessionStorage) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for key, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, key)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (s *SessionStorage) RunJanitor(ctx context.Context, interval, idle time.Duration, logger *zap.Logger) error {
	if interval <= 0 || idle <= 0 {
		logger.Info("session janitor disabled")
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(idle); n > 0 {
				logger.Info("idle sessions dropped",
					zap.Int("count", n),
					zap.Int("remaining", s.Len()),
				)
			}
		}
	}
}
