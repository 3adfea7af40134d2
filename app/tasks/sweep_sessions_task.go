package tasks

import (
	"context"
	"log/slog"

	"github.com/zamwe/zamwe-web/app/session"
)

type SweepSessionsTask struct {
	Task
	store *session.Store
}

func NewSweepSessionsTask(store *session.Store) *SweepSessionsTask {
	return &SweepSessionsTask{
		Task:  NewTask(TaskTypeSweepSessions, "sessions"),
		store: store,
	}
}

func (t *SweepSessionsTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	sessions, notifications := t.store.Sweep()

	slog.Info("Task completed",
		"type", "SweepSessions",
		"duration", t.GetDuration(),
		"sessions_removed", sessions,
		"notifications_removed", notifications,
		"sessions_active", t.store.Len())

	return nil
}
