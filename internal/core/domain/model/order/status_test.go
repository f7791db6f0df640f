package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "out_for_delivery", order.OutForDelivery.String())
	assert.Equal(t, "unknown", order.UnknownStatus.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid value", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Ready,
			order.OutForDelivery, order.Delivered, order.Cancelled, order.Refunded,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject an unknown value", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("allowed edges", func(t *testing.T) {
		allowed := []struct{ from, to order.Status }{
			{order.Pending, order.Confirmed},
			{order.Pending, order.Cancelled},
			{order.Confirmed, order.Preparing},
			{order.Confirmed, order.Cancelled},
			{order.Preparing, order.Ready},
			{order.Preparing, order.Cancelled},
			{order.Ready, order.OutForDelivery},
			{order.OutForDelivery, order.Delivered},
			{order.Delivered, order.Refunded},
		}
		for _, edge := range allowed {
			next, err := edge.from.TransitionTo(edge.to)
			require.NoError(t, err, "%s -> %s should be allowed", edge.from, edge.to)
			assert.Equal(t, edge.to, next)
		}
	})

	t.Run("rejected edges carry both states", func(t *testing.T) {
		rejected := []struct{ from, to order.Status }{
			{order.Pending, order.Preparing},
			{order.Confirmed, order.Delivered},
			{order.Ready, order.Cancelled},
			{order.OutForDelivery, order.Cancelled},
			{order.Delivered, order.Pending},
			{order.Cancelled, order.Confirmed},
			{order.Refunded, order.Pending},
		}
		for _, edge := range rejected {
			_, err := edge.from.TransitionTo(edge.to)
			require.Error(t, err, "%s -> %s should be rejected", edge.from, edge.to)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)

			var transitionErr *errs.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, edge.from.String(), transitionErr.From)
			assert.Equal(t, edge.to.String(), transitionErr.To)
		}
	})

	t.Run("same state is allowed as a no-op", func(t *testing.T) {
		next, err := order.Preparing.TransitionTo(order.Preparing)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("unknown target is an invalid argument, not a transition error", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Status(42))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusAllowsCustomerCancellation(t *testing.T) {
	assert.True(t, order.Pending.AllowsCustomerCancellation())
	assert.True(t, order.Confirmed.AllowsCustomerCancellation())
	assert.False(t, order.Preparing.AllowsCustomerCancellation())
	assert.False(t, order.Ready.AllowsCustomerCancellation())
	assert.False(t, order.OutForDelivery.AllowsCustomerCancellation())
	assert.False(t, order.Delivered.AllowsCustomerCancellation())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Refunded.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal()) // can still be refunded
	assert.False(t, order.Pending.IsTerminal())
}

func TestPaymentMethodInitialOrderStatus(t *testing.T) {
	assert.Equal(t, order.Pending, order.CashOnDelivery.InitialOrderStatus())
	assert.Equal(t, order.Confirmed, order.CreditCard.InitialOrderStatus())
	assert.Equal(t, order.Confirmed, order.DebitCard.InitialOrderStatus())
	assert.Equal(t, order.Confirmed, order.PayPal.InitialOrderStatus())
}
