package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves one order by its order number, authenticated by
// possession: the caller must present the email the order was placed with.
// This is the lookup path for guest orders, which have no owning account,
// but works for any order.
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber
	email       string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track an order by number and email.
func NewTrackOrderQuery(orderNumber kernel.OrderNumber, email string) (TrackOrderQuery, error) {
	trackQuery := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderNumber.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}
	if email == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("email")
	}

	trackQuery.orderNumber = orderNumber
	trackQuery.email = email
	return trackQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderNumber returns the human-readable order identifier.
func (q TrackOrderQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

// Email returns the email presented as proof of possession.
func (q TrackOrderQuery) Email() string {
	return q.email
}
