package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

func adminActor() ports.Actor {
	return ports.Actor{ID: kernel.NewUUID(), Email: "ops@example.com", IsAdmin: true}
}

// placedOrder builds a persisted-looking order owned by userID (nil for
// guest). Card orders start confirmed, cash orders pending.
func placedOrder(t *testing.T, userID *kernel.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	aggregate, err := order.NewOrder(order.NewOrderParams{
		ID:             kernel.NewUUID(),
		OrderNumber:    kernel.NewOrderNumber(),
		UserID:         userID,
		UserEmail:      "alex@example.com",
		RestaurantID:   kernel.NewUUID(),
		RestaurantName: "Napoli Express",
		Items:          testItems(t),
		DeliveryType:   order.Pickup,
		Contact:        testContact(t),
		PaymentMethod:  method,
		Pricing: order.Pricing{
			TaxRate: decimal.NewFromFloat(0.08),
		},
		EstimatedDelivery: now.Add(30 * time.Minute),
		Now:               now,
	})
	require.NoError(t, err)
	return aggregate
}

// advanceTo walks the order through the given statuses in sequence.
func advanceTo(t *testing.T, aggregate *order.Order, statuses ...order.Status) {
	t.Helper()
	for _, status := range statuses {
		require.NoError(t, aggregate.TransitionTo(status, time.Now().UTC()))
	}
}

// expectSingleChange wires the uow mocks for one successful
// read-mutate-write round trip against the given aggregate.
func expectSingleChange(
	ctx context.Context,
	repo *MockOrderRepository,
	uow *MockOrderUoW,
	factory *MockOrderUoWFactory,
	aggregate *order.Order,
	expectedStatus order.Status,
) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, expectedStatus).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, nil, order.CreditCard)

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Preparing, adminActor())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectSingleChange(ctx, repo, uow, factory, aggregate, order.Confirmed)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, commands.CancellationPolicy{})
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NonAdmin_Denied(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), order.Preparing, ports.Actor{ID: kernel.NewUUID()})
	require.NoError(t, err)

	h := commands.NewUpdateOrderStatusCommandHandler(new(MockOrderUoWFactory), commands.CancellationPolicy{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, nil, order.CreditCard)

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Delivered, adminActor())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, commands.CancellationPolicy{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelDuringPreparation_Policy(t *testing.T) {
	for _, tc := range []struct {
		name    string
		allowed bool
	}{
		{name: "allowed by policy", allowed: true},
		{name: "blocked by policy", allowed: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			aggregate := placedOrder(t, nil, order.CreditCard)
			advanceTo(t, aggregate, order.Preparing)

			cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Cancelled, adminActor())
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			factory := new(MockOrderUoWFactory)

			if tc.allowed {
				expectSingleChange(ctx, repo, uow, factory, aggregate, order.Preparing)
			} else {
				mock.InOrder(
					uow.On("Begin", ctx).Return(nil).Once(),
					uow.On("OrderRepository").Return(repo).Once(),
					repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
					uow.On("Rollback", ctx).Return(nil).Once(),
				)
				factory.On("Create").Return(uow).Once()
			}

			h := commands.NewUpdateOrderStatusCommandHandler(factory,
				commands.CancellationPolicy{CancelDuringPreparation: tc.allowed})
			updated, err := h.Handle(ctx, cmd)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, updated.Status())
				assert.NotNil(t, updated.CancelledAt())
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidOperation)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_LostRace_RetriesThenConflicts(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, nil, order.CreditCard)

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Preparing, adminActor())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	// Every attempt reads fresh state and loses the write race. The
	// aggregate is already mutated after attempt one, so the same-state
	// transition no-ops on later attempts.
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("OrderRepository").Return(repo).Times(3)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Times(3)
	repo.On("Update", mock.Anything, aggregate, mock.Anything).
		Return(errs.NewConflictError("status")).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, commands.CancellationPolicy{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	// The loser of a status race reports a conflict, whether it lost one
	// round or every round. Exhaustion is reserved for the order-number
	// path on create.
	var conflictErr *errs.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "status", conflictErr.ParamName)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.NotErrorIs(t, err, errs.ErrResourceExhausted)
	repo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Preparing, adminActor())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, commands.CancellationPolicy{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
