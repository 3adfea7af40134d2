package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskType names the kinds of background work the site does outside a request.
type TaskType string

const (
	TaskTypePaymentFollowUp TaskType = "payment_follow_up"
	TaskTypeSweepSessions   TaskType = "sweep_sessions"
	TaskTypeImportFeed      TaskType = "import_feed"
)

const (
	DefaultMaxRetries = 3
)

// Follow-ups and sweeps run once; the next payment or tick covers a miss.
var retryBudgets = map[TaskType]int{
	TaskTypePaymentFollowUp: 0,
	TaskTypeSweepSessions:   0,
	TaskTypeImportFeed:      DefaultMaxRetries,
}

type TaskInterface interface {
	Execute(ctx context.Context) error
	GetID() string
	GetType() TaskType
	GetSubject() string
	GetRetryCount() int
	GetMaxRetries() int
	IncrementRetryCount()
	CanRetry() bool
	Start()
	GetDuration() time.Duration
}

// Task carries the bookkeeping shared by every job: what it acts on, how
// often it may be retried and when the current attempt started.
type Task struct {
	ID         string
	Type       TaskType
	Subject    string
	RetryCount int
	MaxRetries int
	StartedAt  *time.Time
}

func (t *Task) GetID() string {
	return t.ID
}

func (t *Task) GetType() TaskType {
	return t.Type
}

// GetSubject names what the task acts on: a session, an offer, a feed URL.
func (t *Task) GetSubject() string {
	return t.Subject
}

func (t *Task) GetRetryCount() int {
	return t.RetryCount
}

func (t *Task) GetMaxRetries() int {
	return t.MaxRetries
}

func (t *Task) IncrementRetryCount() {
	t.RetryCount++
}

func (t *Task) CanRetry() bool {
	return t.RetryCount < t.MaxRetries
}

func (t *Task) Start() {
	now := time.Now()
	t.StartedAt = &now
}

func (t *Task) GetDuration() time.Duration {
	if t.StartedAt == nil {
		return 0
	}
	return time.Since(*t.StartedAt)
}

func NewTask(taskType TaskType, subject string) Task {
	maxRetries, ok := retryBudgets[taskType]
	if !ok {
		maxRetries = DefaultMaxRetries
	}

	return Task{
		ID:         uuid.NewString(),
		Type:       taskType,
		Subject:    subject,
		MaxRetries: maxRetries,
	}
}
