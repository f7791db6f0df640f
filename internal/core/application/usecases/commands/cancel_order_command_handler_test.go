package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

func TestCancelOrderCommandHandler_Handle_OwnerCancelsConfirmedOrder(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := placedOrder(t, &userID, order.CreditCard)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "changed my mind", ports.Actor{ID: userID})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectSingleChange(ctx, repo, uow, factory, aggregate, order.Confirmed)

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.Equal(t, "changed my mind", cancelled.CancellationReason())
	assert.NotNil(t, cancelled.CancelledAt())
	repo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NonOwner_Denied(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := placedOrder(t, &ownerID, order.CreditCard)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "", ports.Actor{ID: kernel.NewUUID()})
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

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.Confirmed, aggregate.Status(), "order must be untouched")
}

func TestCancelOrderCommandHandler_Handle_AdminCancelsAnyOrder(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := placedOrder(t, &ownerID, order.CashOnDelivery)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "restaurant closed", adminActor())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectSingleChange(ctx, repo, uow, factory, aggregate, order.Pending)

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
}

func TestCancelOrderCommandHandler_Handle_PreparingOrder_Rejected(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := placedOrder(t, &userID, order.CreditCard)
	advanceTo(t, aggregate, order.Preparing)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "too late", ports.Actor{ID: userID})
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

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Preparing, aggregate.Status())
}

func TestCancelOrderCommandHandler_Handle_GuestOrder_AnonymousDenied(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, nil, order.CashOnDelivery)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "", ports.AnonymousActor())
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

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}
