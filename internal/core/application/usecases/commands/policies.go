package commands

import (
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
)

// PricingPolicy carries the platform-level pricing inputs applied to every
// order. The per-restaurant delivery fee comes from the catalog instead.
type PricingPolicy struct {
	// TaxRate is the fractional sales tax rate, e.g. 0.08 for 8%.
	TaxRate decimal.Decimal

	// ServiceFee is the flat platform fee added to each order.
	ServiceFee kernel.Money
}

// CancellationPolicy controls which staff-side cancellations are accepted.
type CancellationPolicy struct {
	// CancelDuringPreparation allows staff to cancel an order that the
	// kitchen already started. Customer self-service cancellation stops at
	// confirmation regardless of this switch.
	CancelDuringPreparation bool
}
