package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// UpdatePaymentStatusCommandHandler records payment provider outcomes.
// Restricted to admins; payment webhooks authenticate as a service actor
// with admin rights.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment
// status updates.
func NewUpdatePaymentStatusCommandHandler(uowFactory OrderUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the payment status update and returns the updated
// aggregate.
func (h *UpdatePaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePaymentStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsAdmin {
		return nil, errs.NewPermissionDeniedError("update payment status")
	}

	now := time.Now().UTC()
	return applyOrderChange(ctx, h.uowFactory, cmd.OrderID(),
		func(aggregate *order.Order) error {
			return aggregate.SetPaymentStatus(cmd.PaymentStatus(), now)
		})
}
