package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateTipCommandIsNotConstructed = errors.New(
	"UpdateTipCommand must be created via NewUpdateTipCommand constructor",
)

// UpdateTipCommand represents a customer changing the tip on their order.
// A zero amount removes the tip.
type UpdateTipCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	tip     kernel.Money
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewUpdateTipCommand creates a command to replace an order's tip amount.
func NewUpdateTipCommand(orderID kernel.UUID, tip kernel.Money, actor ports.Actor) (UpdateTipCommand, error) {
	tipCommand := UpdateTipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tipCommand.setOrderID(orderID); err != nil {
		return UpdateTipCommand{}, err
	}

	tipCommand.tip = tip
	tipCommand.actor = actor
	return tipCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTipCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTipCommandIsNotConstructed)
}

// OrderID returns the order being tipped.
func (c UpdateTipCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Tip returns the new tip amount.
func (c UpdateTipCommand) Tip() kernel.Money {
	return c.tip
}

// Actor returns the identity changing the tip.
func (c UpdateTipCommand) Actor() ports.Actor {
	return c.actor
}

func (c *UpdateTipCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
