package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zamwe/zamwe-web/app/seed"
)

type Store struct {
	mu              sync.RWMutex
	catalog         *seed.Catalog
	sessions        map[uuid.UUID]*Session
	notificationTTL time.Duration
	ttl             time.Duration
	now             func() time.Time
}

func NewStore(catalog *seed.Catalog, notificationTTL, sessionTTL time.Duration) *Store {
	return &Store{
		catalog:         catalog,
		sessions:        make(map[uuid.UUID]*Session),
		notificationTTL: notificationTTL,
		ttl:             sessionTTL,
		now:             time.Now,
	}
}

// WithClock replaces the time source for the store and every session it
// creates afterwards. Used by tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Catalog is the shared read-only seed data.
func (s *Store) Catalog() *seed.Catalog {
	return s.catalog
}

func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Open returns the session for a cookie value, creating a new one when the
// value is empty, malformed or unknown. The second result reports creation.
func (s *Store) Open(cookie string) (*Session, bool) {
	if id, err := uuid.Parse(cookie); err == nil {
		if sess, ok := s.Get(id); ok {
			sess.Touch()
			return sess, false
		}
	}
	return s.Create(), true
}

func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := newSession(uuid.New(), s.catalog, s.notificationTTL, s.now)
	s.sessions[sess.ID] = sess

	slog.Debug("Session created", "session", sess.ID.String(), "active", len(s.sessions))
	return sess
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the session TTL and prunes
// expired notifications from the rest.
func (s *Store) Sweep() (sessions int, notifications int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
			sessions++
			continue
		}
		notifications += sess.Notifications().Prune()
	}

	return sessions, notifications
}
