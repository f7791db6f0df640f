package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// on the write side. Orders are exclusively owned by the repository between
// calls; the application layer holds no cached copies across requests.
// Read-only access paths (listings, lookups by number) belong to the query
// handlers, which go to the database directly.
//
// Concurrency discipline: Add relies on a unique constraint over the order
// number, and Update is a compare-and-set conditioned on the delivery status
// being unchanged since it was read. Both surface errs.ErrConflict so
// callers can run a bounded retry.
type OrderRepository interface {
	// Add persists a new order aggregate. A unique-constraint violation on
	// the order number is reported as a ConflictError with ParamName
	// "orderNumber", letting the creation loop regenerate and retry;
	// any other failure propagates as-is.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, conditioned on the
	// stored delivery status still matching expectedStatus. Returns a
	// ConflictError when the condition fails and ObjectNotFoundError when
	// the order does not exist.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
