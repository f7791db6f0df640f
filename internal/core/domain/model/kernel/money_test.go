package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("should create money from a positive amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(16.99)

		require.NoError(t, err)
		assert.Equal(t, "16.99", m.String())
	})

	t.Run("should round to the minor unit half away from zero", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(2.4776)

		require.NoError(t, err)
		assert.Equal(t, "2.48", m.String())
	})

	t.Run("should round 0.005 up", func(t *testing.T) {
		m, err := kernel.NewMoneyFromDecimal(decimal.RequireFromString("0.005"))

		require.NoError(t, err)
		assert.Equal(t, "0.01", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})
}

func TestMoneyArithmetic(t *testing.T) {
	money := func(s string) kernel.Money {
		m, err := kernel.NewMoneyFromDecimal(decimal.RequireFromString(s))
		require.NoError(t, err)
		return m
	}

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, "30.97", money("16.99").Add(money("13.98")).String())
	})

	t.Run("Sub", func(t *testing.T) {
		result, err := money("36.44").Sub(money("5.00"))

		require.NoError(t, err)
		assert.Equal(t, "31.44", result.String())
	})

	t.Run("Sub below zero is an error, not a clamp", func(t *testing.T) {
		_, err := money("5.00").Sub(money("10.00"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("MulQuantity", func(t *testing.T) {
		assert.Equal(t, "13.98", money("6.99").MulQuantity(2).String())
	})

	t.Run("MulRate rounds the derived amount", func(t *testing.T) {
		tax := money("30.97").MulRate(decimal.RequireFromString("0.08"))

		// 30.97 * 0.08 = 2.4776, rounded half away from zero
		assert.Equal(t, "2.48", tax.String())
	})

	t.Run("WithinMinorUnit tolerates one cent", func(t *testing.T) {
		assert.True(t, money("36.44").WithinMinorUnit(money("36.45")))
		assert.True(t, money("36.44").WithinMinorUnit(money("36.44")))
		assert.False(t, money("36.44").WithinMinorUnit(money("36.46")))
	})
}
