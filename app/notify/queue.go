// Package notify holds transient user notifications.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notifier is the only contract callers depend on.
type Notifier interface {
	Emit(title, description string, severity Severity)
}

type Notification struct {
	ID          uuid.UUID `json:"id"`
	Seq         uint64    `json:"seq"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (n Notification) Destructive() bool {
	return n.Severity == SeverityDestructive
}

// Queue keeps notifications in emission order and drops them once their TTL
// has passed.
type Queue struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	seq   uint64
	items []Notification
}

var _ Notifier = (*Queue)(nil)

func NewQueue(ttl time.Duration) *Queue {
	return &Queue{ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (q *Queue) WithClock(now func() time.Time) *Queue {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.now = now
	return q
}

func (q *Queue) Emit(title, description string, severity Severity) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if severity == "" {
		severity = SeverityNormal
	}

	now := q.now()
	q.seq++
	q.items = append(q.items, Notification{
		ID:          uuid.New(),
		Seq:         q.seq,
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   now,
		ExpiresAt:   now.Add(q.ttl),
	})

	slog.Debug("Notification emitted", "title", title, "severity", string(severity), "seq", q.seq)
}

// Active returns the notifications that have not expired, oldest first.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	active := make([]Notification, 0, len(q.items))
	for _, n := range q.items {
		if now.Before(n.ExpiresAt) {
			active = append(active, n)
		}
	}
	return active
}

func (q *Queue) Dismiss(id uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Prune drops expired notifications and reports how many were removed.
func (q *Queue) Prune() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	kept := q.items[:0]
	for _, n := range q.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	removed := len(q.items) - len(kept)
	q.items = kept
	return removed
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
