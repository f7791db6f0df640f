package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a page of order summaries, newest first.
// Customers always see only their own orders; admins see everything and
// may narrow by status or restaurant.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor        ports.Actor
	status       *order.Status
	restaurantID *kernel.UUID
	page         int
	size         int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Page numbers start at
// one; out-of-range paging inputs fall back to defaults rather than
// erroring.
func NewListOrdersQuery(
	actor ports.Actor,
	status *order.Status,
	restaurantID *kernel.UUID,
	page, size int,
) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	listQuery.actor = actor
	listQuery.status = status
	listQuery.restaurantID = restaurantID
	listQuery.page = page
	listQuery.size = size
	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the identity listing orders.
func (q ListOrdersQuery) Actor() ports.Actor {
	return q.actor
}

// Status returns an optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// RestaurantID returns an optional restaurant filter.
func (q ListOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListOrdersQuery) Size() int {
	return q.size
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID                uuid.UUID
	OrderNumber       string
	RestaurantName    string
	RestaurantImage   string
	Status            string
	PaymentStatus     string
	TotalAmount       decimal.Decimal
	CreatedAt         time.Time
	EstimatedDelivery time.Time
}

// ListOrdersQueryResponse is a page of order summaries plus the total
// match count for pagination.
type ListOrdersQueryResponse struct {
	Orders []OrderSummaryResponse
	Total  int64
	Page   int
	Size   int
}
