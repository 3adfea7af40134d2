package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/money"
	"github.com/zamwe/zamwe-web/app/notify"
	"github.com/zamwe/zamwe-web/app/seed"
	"github.com/zamwe/zamwe-web/app/session"
)

func newTestStore() *session.Store {
	catalog := &seed.Catalog{
		Items: []feed.Item{
			{ID: 1, Kind: feed.KindUpdate, Title: "New Business Directory Feature Launch"},
		},
	}
	return session.NewStore(catalog, time.Minute, time.Hour)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before timeout")
}

func titles(q *notify.Queue) []string {
	var out []string
	for _, n := range q.Active() {
		out = append(out, n.Title)
	}
	return out
}

type flakyTask struct {
	Task
	failures int32
	calls    atomic.Int32
}

func (f *flakyTask) Execute(ctx context.Context) error {
	if f.calls.Add(1) <= f.failures {
		return errors.New("temporary failure")
	}
	return nil
}

func TestScheduler_MembershipPaymentNotifiesTwice(t *testing.T) {
	store := newTestStore()
	scheduler := NewScheduler(store, Options{WorkerCount: 1, PaymentDelay: 20 * time.Millisecond})
	scheduler.Start()
	defer scheduler.Stop()

	sess := store.Create()
	gate := feed.NewGate(money.Naira())
	queue := sess.Notifications()

	offer := seed.Tier{ID: "fellow", Name: "Fellow ZAMWE", Price: 30000}.Offer()
	gate.Invoke(offer, queue, scheduler.FollowUp(queue))

	got := titles(queue)
	if len(got) != 1 || got[0] != "Redirecting to Payment" {
		t.Fatalf("Expected immediate redirect notice, got %v", got)
	}

	waitFor(t, func() bool { return queue.Len() == 2 })

	active := queue.Active()
	if active[1].Title != "Payment Processing" || active[1].Description != "You will be redirected to Remita payment gateway..." {
		t.Errorf("Unexpected follow-up %+v", active[1])
	}
}

func TestScheduler_ItemPaymentNotifiesOnce(t *testing.T) {
	store := newTestStore()
	scheduler := NewScheduler(store, Options{WorkerCount: 2})
	scheduler.Start()
	defer scheduler.Stop()

	queue := notify.NewQueue(time.Minute)
	gate := feed.NewGate(money.Naira())
	offer := feed.Offer{Subject: "Workshop", Kind: feed.KindEvent, PaymentRequired: true, Amount: 2500}

	gate.Invoke(offer, queue, scheduler.FollowUp(queue))
	time.Sleep(50 * time.Millisecond)
	if got := titles(queue); len(got) != 1 || got[0] != "Payment Processing" {
		t.Errorf("Expected a single payment notice, got %v", got)
	}
}

func TestScheduler_FreeOfferSchedulesNothing(t *testing.T) {
	store := newTestStore()
	scheduler := NewScheduler(store, Options{WorkerCount: 1})
	scheduler.Start()
	defer scheduler.Stop()

	queue := notify.NewQueue(time.Minute)
	gate := feed.NewGate(money.Naira())
	gate.Invoke(feed.Offer{Subject: "News", Kind: feed.KindUpdate}, queue, scheduler.FollowUp(queue))

	time.Sleep(50 * time.Millisecond)
	if queue.Len() != 0 {
		t.Errorf("Read more must not notify, got %v", titles(queue))
	}
}

func TestScheduler_RetriesFailedTasks(t *testing.T) {
	scheduler := NewScheduler(newTestStore(), Options{WorkerCount: 1})
	scheduler.Start()
	defer scheduler.Stop()

	task := &flakyTask{Task: NewTask("flaky", "test"), failures: 1}
	if err := scheduler.EnqueueTask(task); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	waitFor(t, func() bool { return task.calls.Load() == 2 })
	if task.GetRetryCount() != 1 {
		t.Errorf("Expected 1 retry, got %d", task.GetRetryCount())
	}
}

func TestScheduler_StopRejectsNewTasks(t *testing.T) {
	scheduler := NewScheduler(newTestStore(), Options{WorkerCount: 1})
	scheduler.Start()

	queue := notify.NewQueue(time.Minute)
	offer := feed.Offer{Subject: "Dues", Kind: feed.KindAnnouncement, PaymentRequired: true, Amount: 100}
	if err := scheduler.EnqueueAfter(NewPaymentFollowUpTask(offer, queue), time.Hour); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	done := make(chan struct{})
	go func() {
		scheduler.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop should not wait for delayed tasks")
	}

	if err := scheduler.EnqueueTask(NewSweepSessionsTask(newTestStore())); !errors.Is(err, ErrSchedulerStopped) {
		t.Errorf("Expected ErrSchedulerStopped, got %v", err)
	}
	scheduler.Stop()

	if queue.Len() != 0 {
		t.Error("Dropped follow-up must not notify")
	}
}

func TestScheduler_TickerSweepsSessions(t *testing.T) {
	store := session.NewStore(&seed.Catalog{}, time.Millisecond, time.Millisecond)
	store.Create()

	scheduler := NewScheduler(store, Options{WorkerCount: 1, Interval: 10 * time.Millisecond})
	scheduler.Start()
	defer scheduler.Stop()

	waitFor(t, func() bool { return store.Len() == 0 })
}

func TestNewTask_RetryBudgets(t *testing.T) {
	cases := map[TaskType]int{
		TaskTypeImportFeed:      DefaultMaxRetries,
		TaskTypePaymentFollowUp: 0,
		TaskTypeSweepSessions:   0,
		"custom":                DefaultMaxRetries,
	}

	for taskType, want := range cases {
		task := NewTask(taskType, "subject")
		if task.MaxRetries != want {
			t.Errorf("%s: expected %d retries, got %d", taskType, want, task.MaxRetries)
		}
		if task.ID == "" {
			t.Errorf("%s: expected an id", taskType)
		}
	}

	if NewTask(TaskTypeSweepSessions, "store").CanRetry() {
		t.Error("Sweeps must not be retried")
	}
}
