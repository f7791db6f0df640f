package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// Notifier delivers order side-effect notifications. Implementations must
// be idempotent-safe: notifying about the same order more than once is
// harmless. Notification reliability is a lower tier than order
// persistence; failures are logged and retried, never propagated into a
// failed order creation.
type Notifier interface {
	// NotifyOrderConfirmed tells the customer their order was accepted.
	NotifyOrderConfirmed(ctx context.Context, aggregate *order.Order) error

	// NotifyAdmin alerts operations staff about a new order.
	NotifyAdmin(ctx context.Context, aggregate *order.Order) error
}
