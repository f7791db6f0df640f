package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves orders through their lifecycle on
// behalf of staff. Only admins may change status; the aggregate's
// transition table decides which moves are legal.
type UpdateOrderStatusCommandHandler struct {
	uowFactory   OrderUoWFactory
	cancellation CancellationPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for staff status
// updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	cancellation CancellationPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:   uowFactory,
		cancellation: cancellation,
	}
}

// Handle processes the status update. The write is conditioned on the
// status the order had when read, so concurrent staff updates cannot
// silently overwrite each other. Returns the updated aggregate.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsAdmin {
		return nil, errs.NewPermissionDeniedError("update order status")
	}

	now := time.Now().UTC()
	return applyOrderChange(ctx, h.uowFactory, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if cmd.NewStatus() == order.Cancelled &&
				aggregate.Status() == order.Preparing &&
				!h.cancellation.CancelDuringPreparation {
				return errs.NewInvalidOperationError("cancel during preparation")
			}

			return aggregate.TransitionTo(cmd.NewStatus(), now)
		})
}
