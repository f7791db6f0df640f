package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// ApplyDiscountCommandHandler grants discounts on behalf of staff. Only
// admins may discount; the aggregate rejects a discount larger than the
// gross total.
type ApplyDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApplyDiscountCommandHandler creates a handler for staff discounts.
func NewApplyDiscountCommandHandler(uowFactory OrderUoWFactory) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{uowFactory: uowFactory}
}

// Handle processes the discount and returns the updated aggregate.
func (h *ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsAdmin {
		return nil, errs.NewPermissionDeniedError("apply discount")
	}

	now := time.Now().UTC()
	return applyOrderChange(ctx, h.uowFactory, cmd.OrderID(),
		func(aggregate *order.Order) error {
			return aggregate.ApplyDiscount(cmd.Discount(), now)
		})
}
