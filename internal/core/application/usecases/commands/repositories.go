// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence with bounded retries on
// concurrency conflicts.
package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// ConfirmationPublisher announces an accepted order to interested parties.
// Publishing is fire-and-forget: implementations take care of their own
// timeouts, logging and retries, and a failed notification never fails the
// order itself.
type ConfirmationPublisher interface {
	PublishOrderConfirmed(aggregate *order.Order)
}
