package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand records the outcome reported by the payment
// provider against an order.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus
	actor         ports.Actor

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a command to change an order's
// payment status.
func NewUpdatePaymentStatusCommand(
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
	actor ports.Actor,
) (UpdatePaymentStatusCommand, error) {
	paymentCommand := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	paymentCommand.actor = actor
	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the reported payment outcome.
func (c UpdatePaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// Actor returns the identity performing the update.
func (c UpdatePaymentStatusCommand) Actor() ports.Actor {
	return c.actor
}

func (c *UpdatePaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePaymentStatusCommand) setPaymentStatus(paymentStatus order.PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	c.paymentStatus = paymentStatus
	return nil
}
