package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles customer-initiated cancellation.
// Customers may cancel while the order is pending or confirmed; once the
// kitchen starts, cancellation becomes a staff operation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancellation and returns the cancelled aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return applyOrderChange(ctx, h.uowFactory, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if err := requireOrderAccess(cmd.Actor(), aggregate, "cancel order"); err != nil {
				return err
			}

			return aggregate.Cancel(cmd.Reason(), now)
		})
}
