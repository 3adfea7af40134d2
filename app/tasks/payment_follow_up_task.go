package tasks

import (
	"context"
	"log/slog"

	"github.com/zamwe/zamwe-web/app/feed"
	"github.com/zamwe/zamwe-web/app/notify"
)

// PaymentFollowUpTask is the delayed second notification after a membership
// payment fires. It only notifies; no payment is taken.
type PaymentFollowUpTask struct {
	Task
	Offer    feed.Offer
	notifier notify.Notifier
}

func NewPaymentFollowUpTask(offer feed.Offer, notifier notify.Notifier) *PaymentFollowUpTask {
	return &PaymentFollowUpTask{
		Task:     NewTask(TaskTypePaymentFollowUp, offer.Subject),
		Offer:    offer,
		notifier: notifier,
	}
}

func (t *PaymentFollowUpTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.notifier.Emit("Payment Processing",
		"You will be redirected to Remita payment gateway...",
		notify.SeverityNormal)

	slog.Info("Task completed",
		"type", "PaymentFollowUp",
		"subject", t.Subject,
		"kind", t.Offer.Kind.String(),
		"duration", t.GetDuration())

	return nil
}
