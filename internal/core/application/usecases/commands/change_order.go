package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// applyOrderChange loads an order, applies mutate, and writes it back
// conditioned on the status that was read. When the write loses a race the
// whole read-mutate-write sequence reruns with fresh state, up to
// maxPersistAttempts times; losing every round surfaces the conflict
// itself, so callers see the same error a single lost race produces.
func applyOrderChange(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) (*order.Order, error) {
	var lastErr error
	for attempt := 1; attempt <= maxPersistAttempts; attempt++ {
		aggregate, err := applyOrderChangeOnce(ctx, uowFactory, orderID, mutate)
		if err == nil {
			return aggregate, nil
		}

		var conflictErr *errs.ConflictError
		if !errors.As(err, &conflictErr) || conflictErr.ParamName != "status" {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func applyOrderChangeOnce(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	expectedStatus := aggregate.Status()
	if err = mutate(aggregate); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate, expectedStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// requireOrderAccess checks that the actor may act on the order: admins
// always, owners on their own orders. Guest orders have no owner and are
// staff-serviced only.
func requireOrderAccess(actor ports.Actor, aggregate *order.Order, operation string) error {
	if actor.IsAdmin {
		return nil
	}
	if !actor.IsAnonymous() && aggregate.IsOwnedBy(actor.ID) {
		return nil
	}
	return errs.NewPermissionDeniedError(operation)
}
