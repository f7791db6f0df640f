package kernel_test

import (
	"strings"
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	t.Run("should generate a number with the ORD prefix", func(t *testing.T) {
		n := kernel.NewOrderNumber()

		assert.True(t, strings.HasPrefix(n.String(), "ORD"))
		require.NoError(t, n.Validate())
	})

	t.Run("consecutive numbers should differ", func(t *testing.T) {
		n1 := kernel.NewOrderNumber()
		n2 := kernel.NewOrderNumber()

		assert.False(t, n1.IsEqual(n2))
	})
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("should accept a well-formed number", func(t *testing.T) {
		n, err := kernel.OrderNumberFromString("ORDM3K9F2A17XQ")

		require.NoError(t, err)
		assert.Equal(t, "ORDM3K9F2A17XQ", n.String())
	})

	t.Run("should reject a number without the prefix", func(t *testing.T) {
		_, err := kernel.OrderNumberFromString("M3K9F2A17XQ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the bare prefix", func(t *testing.T) {
		_, err := kernel.OrderNumberFromString("ORD")

		require.Error(t, err)
	})
}

func TestOrderNumberValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var n kernel.OrderNumber

		require.Error(t, n.Validate())
	})
}
