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

func TestUpdateTipCommandHandler_Handle_Owner_RecomputesTotal(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	aggregate := placedOrder(t, &userID, order.CreditCard)
	totalBefore := aggregate.TotalAmount()

	tip, err := kernel.NewMoneyFromFloat(5.00)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateTipCommand(aggregate.ID(), tip, ports.Actor{ID: userID})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	expectSingleChange(ctx, repo, uow, factory, aggregate, order.Confirmed)

	h := commands.NewUpdateTipCommandHandler(factory)
	tipped, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, tipped.Tip().IsEqual(tip))
	assert.True(t, tipped.TotalAmount().IsEqual(totalBefore.Add(tip)))
	repo.AssertExpectations(t)
}

func TestUpdateTipCommandHandler_Handle_NonOwner_Denied(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := placedOrder(t, &ownerID, order.CreditCard)

	tip, err := kernel.NewMoneyFromFloat(3.50)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateTipCommand(aggregate.ID(), tip, ports.Actor{ID: kernel.NewUUID()})
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

	h := commands.NewUpdateTipCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.True(t, aggregate.Tip().IsEqual(kernel.ZeroMoney()))
}
