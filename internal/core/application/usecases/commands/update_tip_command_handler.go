package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// UpdateTipCommandHandler replaces the tip on an order and recomputes its
// totals. Owners may tip their own orders; admins may adjust any.
type UpdateTipCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateTipCommandHandler creates a handler for tip changes.
func NewUpdateTipCommandHandler(uowFactory OrderUoWFactory) UpdateTipCommandHandler {
	return UpdateTipCommandHandler{uowFactory: uowFactory}
}

// Handle processes the tip change and returns the updated aggregate.
func (h *UpdateTipCommandHandler) Handle(ctx context.Context, cmd UpdateTipCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return applyOrderChange(ctx, h.uowFactory, cmd.OrderID(),
		func(aggregate *order.Order) error {
			if err := requireOrderAccess(cmd.Actor(), aggregate, "update tip"); err != nil {
				return err
			}

			return aggregate.SetTip(cmd.Tip(), now)
		})
}
