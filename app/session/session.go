// Package session holds the per-browser application state.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/notify"
	"github.com/zamwe/zamwe-web/app/seed"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrNoticeNotFound = errors.New("notice not found")
)

// Session is one visitor's view of the site. It starts as a copy of the seed
// catalog; admin edits stay inside it.
type Session struct {
	ID uuid.UUID

	mu            sync.RWMutex
	items         []feed.Item
	notices       []seed.Notice
	notifications *notify.Queue
	nextID        int64
	lastSeen      time.Time
	now           func() time.Time
}

func newSession(id uuid.UUID, catalog *seed.Catalog, notificationTTL time.Duration, now func() time.Time) *Session {
	s := &Session{
		ID:            id,
		items:         make([]feed.Item, 0, len(catalog.Items)),
		notices:       make([]seed.Notice, 0, len(catalog.Notices)),
		notifications: notify.NewQueue(notificationTTL).WithClock(now),
		lastSeen:      now(),
		now:           now,
	}

	for _, item := range catalog.Items {
		s.items = append(s.items, cloneItem(item))
		if item.ID >= s.nextID {
			s.nextID = item.ID + 1
		}
	}
	for _, notice := range catalog.Notices {
		notice.Item = cloneItem(notice.Item)
		s.notices = append(s.notices, notice)
	}
	if s.nextID == 0 {
		s.nextID = 1
	}

	return s
}

// Items returns the session's feed in listing order.
func (s *Session) Items() []feed.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]feed.Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Session) FindItem(id int64) (feed.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return feed.Item{}, fmt.Errorf("%w: %d", ErrItemNotFound, id)
}

// AddItem assigns a fresh ID and puts the item at the top of the feed.
func (s *Session) AddItem(item feed.Item) (feed.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID
	if item.OccursOn.IsZero() {
		item.OccursOn = s.now()
	}
	if err := item.Validate(); err != nil {
		return feed.Item{}, fmt.Errorf("invalid item: %w", err)
	}

	s.nextID++
	s.items = append([]feed.Item{item}, s.items...)

	slog.Debug("Item added", "session", s.ID.String(), "id", item.ID, "kind", item.Kind.String())
	return item, nil
}

func (s *Session) RemoveItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			slog.Debug("Item removed", "session", s.ID.String(), "id", id)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrItemNotFound, id)
}

// Notices are the dashboard notifications, distinct from the transient queue.
func (s *Session) Notices() []seed.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notices := make([]seed.Notice, len(s.notices))
	copy(notices, s.notices)
	return notices
}

func (s *Session) FindNotice(id int64) (seed.Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, notice := range s.notices {
		if notice.ID == id {
			return notice, nil
		}
	}
	return seed.Notice{}, fmt.Errorf("%w: %d", ErrNoticeNotFound, id)
}

func (s *Session) UnreadNotices() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unread := 0
	for _, notice := range s.notices {
		if !notice.Read {
			unread++
		}
	}
	return unread
}

func (s *Session) Notifications() *notify.Queue {
	return s.notifications
}

// LoggedIn is always false: there is no authentication.
func (s *Session) LoggedIn() bool {
	return false
}

func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
}

func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

func cloneItem(item feed.Item) feed.Item {
	if item.Capacity != nil {
		v := *item.Capacity
		item.Capacity = &v
	}
	if item.RegisteredCount != nil {
		v := *item.RegisteredCount
		item.RegisteredCount = &v
	}
	if item.TargetAmount != nil {
		v := *item.TargetAmount
		item.TargetAmount = &v
	}
	if item.CurrentAmount != nil {
		v := *item.CurrentAmount
		item.CurrentAmount = &v
	}
	return item
}
