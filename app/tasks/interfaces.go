package tasks

import (
	"time"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/notify"
)

// TaskSchedulerInterface is what the HTTP layer depends on to hand off
// background work.
//
//	scheduler := NewScheduler(store, Options{...})
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueAfter(NewPaymentFollowUpTask(offer, queue), 2*time.Second)
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
	EnqueueAfter(task TaskInterface, delay time.Duration) error
	FollowUp(n notify.Notifier) feed.FollowUp
}
