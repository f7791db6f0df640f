package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer's request to cancel their own
// order. Admins may cancel on a customer's behalf.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order. The reason
// is optional free text.
func NewCancelOrderCommand(orderID kernel.UUID, reason string, actor ports.Actor) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	cancelCommand.reason = reason
	cancelCommand.actor = actor
	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the customer-supplied cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

// Actor returns the identity requesting the cancellation.
func (c CancelOrderCommand) Actor() ports.Actor {
	return c.actor
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
