package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a customer leaving feedback on a delivered
// order. The 1-5 range is enforced by the aggregate.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	rating  int
	review  string
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate an order.
func NewRateOrderCommand(orderID kernel.UUID, rating int, review string, actor ports.Actor) (RateOrderCommand, error) {
	rateCommand := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rateCommand.setOrderID(orderID); err != nil {
		return RateOrderCommand{}, err
	}

	rateCommand.rating = rating
	rateCommand.review = review
	rateCommand.actor = actor
	return rateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the order being rated.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the star rating.
func (c RateOrderCommand) Rating() int {
	return c.rating
}

// Review returns the optional review text.
func (c RateOrderCommand) Review() string {
	return c.review
}

// Actor returns the identity leaving the feedback.
func (c RateOrderCommand) Actor() ports.Actor {
	return c.actor
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
