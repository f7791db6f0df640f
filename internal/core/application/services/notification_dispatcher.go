// Package services holds application services that sit next to the
// command handlers but are not commands themselves.
package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

const (
	// dispatchTimeout bounds each notification attempt.
	dispatchTimeout = 5 * time.Second

	// maxRetryAttempts is the number of background retries after the
	// initial failed dispatch before a notification is dropped.
	maxRetryAttempts = 5

	// maxPending caps the in-memory retry queue. When full, the oldest
	// entry is dropped in favor of the newest.
	maxPending = 1024
)

// pendingNotification tracks the channels still owed for one order.
type pendingNotification struct {
	aggregate *order.Order
	customer  bool
	admin     bool
	attempts  int
}

// NotificationDispatcher fans order events out to the notifier without
// blocking the caller. Order creation must not fail because an email or
// ops alert could not go out, so dispatch errors are logged and queued for
// background retry instead of being returned.
//
// The retry queue lives in memory; a process restart loses it. That is an
// accepted trade-off for notification-tier reliability.
type NotificationDispatcher struct {
	notifier ports.Notifier
	log      *slog.Logger

	mu      sync.Mutex
	pending []pendingNotification
}

// NewNotificationDispatcher creates a dispatcher over the given notifier.
func NewNotificationDispatcher(notifier ports.Notifier, log *slog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		notifier: notifier,
		log:      log.With("component", "notification_dispatcher"),
	}
}

// PublishOrderConfirmed dispatches the customer and admin notifications
// for a newly accepted order in the background and returns immediately.
func (d *NotificationDispatcher) PublishOrderConfirmed(aggregate *order.Order) {
	go d.dispatch(pendingNotification{
		aggregate: aggregate,
		customer:  true,
		admin:     true,
	})
}

// RetryPending re-attempts every queued notification once. Entries that
// fail again go back to the queue until their attempts run out. Called
// periodically by the notification retry job.
func (d *NotificationDispatcher) RetryPending(ctx context.Context) {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, notification := range batch {
		select {
		case <-ctx.Done():
			// Put the rest back for the next run.
			d.mu.Lock()
			d.pending = append(d.pending, notification)
			d.mu.Unlock()
			continue
		default:
		}

		d.dispatch(notification)
	}
}

// PendingCount reports the current retry queue depth.
func (d *NotificationDispatcher) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// dispatch attempts the remaining channels of one notification. Channels
// fail independently: a dead ops topic does not stop customer emails.
func (d *NotificationDispatcher) dispatch(notification pendingNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	orderNumber := notification.aggregate.OrderNumber().String()

	if notification.customer {
		if err := d.notifier.NotifyOrderConfirmed(ctx, notification.aggregate); err != nil {
			d.log.ErrorContext(ctx, "customer notification failed",
				"order_number", orderNumber, "attempt", notification.attempts, "error", err)
		} else {
			notification.customer = false
		}
	}

	if notification.admin {
		if err := d.notifier.NotifyAdmin(ctx, notification.aggregate); err != nil {
			d.log.ErrorContext(ctx, "admin notification failed",
				"order_number", orderNumber, "attempt", notification.attempts, "error", err)
		} else {
			notification.admin = false
		}
	}

	if !notification.customer && !notification.admin {
		return
	}

	notification.attempts++
	if notification.attempts > maxRetryAttempts {
		d.log.ErrorContext(ctx, "dropping notification after repeated failures",
			"order_number", orderNumber, "attempts", notification.attempts)
		return
	}

	d.enqueue(ctx, notification)
}

func (d *NotificationDispatcher) enqueue(ctx context.Context, notification pendingNotification) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pending) >= maxPending {
		dropped := d.pending[0]
		d.pending = d.pending[1:]
		d.log.WarnContext(ctx, "retry queue full, dropping oldest notification",
			"order_number", dropped.aggregate.OrderNumber().String())
	}

	d.pending = append(d.pending, notification)
}
