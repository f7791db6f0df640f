package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// RateOrderCommandHandler records customer feedback on delivered orders.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRateOrderCommandHandler creates a handler for order feedback.
func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the feedback and returns the rated aggregate.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return applyOrderChange(ctx, h.uowFactory, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if err := requireOrderAccess(cmd.Actor(), aggregate, "rate order"); err != nil {
				return err
			}

			return aggregate.Rate(cmd.Rating(), cmd.Review(), now)
		})
}
