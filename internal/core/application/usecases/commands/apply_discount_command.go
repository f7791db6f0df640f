package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var ErrApplyDiscountCommandIsNotConstructed = errors.New(
	"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
)

// ApplyDiscountCommand represents staff granting a goodwill or promotional
// discount on an order. A zero amount removes the discount.
type ApplyDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	discount kernel.Money
	actor    ports.Actor

	guard guard.ConstructorGuard
}

// NewApplyDiscountCommand creates a command to replace an order's discount.
func NewApplyDiscountCommand(orderID kernel.UUID, discount kernel.Money, actor ports.Actor) (ApplyDiscountCommand, error) {
	discountCommand := ApplyDiscountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := discountCommand.setOrderID(orderID); err != nil {
		return ApplyDiscountCommand{}, err
	}

	discountCommand.discount = discount
	discountCommand.actor = actor
	return discountCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

// OrderID returns the order being discounted.
func (c ApplyDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Discount returns the new discount amount.
func (c ApplyDiscountCommand) Discount() kernel.Money {
	return c.discount
}

// Actor returns the identity granting the discount.
func (c ApplyDiscountCommand) Actor() ports.Actor {
	return c.actor
}

func (c *ApplyDiscountCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
