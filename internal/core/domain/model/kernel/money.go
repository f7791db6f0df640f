package kernel

import (
	"github.com/shopspring/decimal"

	"foodorder/internal/pkg/errs"
)

// minorUnitPlaces is the number of decimal places in the minor currency unit.
const minorUnitPlaces = 2

// Money is an immutable value object for monetary amounts. It wraps a
// fixed-point decimal so repeated recomputation of order totals never
// accumulates binary floating-point drift.
//
// Amounts are non-negative; subtraction that would go below zero returns
// an error rather than clamping, since a negative total signals a
// pricing-input fault.
//
// Rounding policy: round half away from zero to the minor unit (cents).
// Derived amounts such as taxes are normalized through this policy.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a zero amount. The zero value of Money is equivalent.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromDecimal creates a Money from a decimal amount, rounded to the
// minor unit. Negative amounts are rejected.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	rounded := amount.Round(minorUnitPlaces)
	if rounded.IsNegative() {
		return Money{}, errs.NewValueIsInvalidError("amount must not be negative")
	}
	return Money{amount: rounded}, nil
}

// NewMoneyFromFloat creates a Money from a float amount, e.g. a value taken
// from a request payload. The amount is rounded to the minor unit.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoneyFromDecimal(decimal.NewFromFloat(amount))
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m minus other. A result below zero is an error, not a clamp.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"amount", result.StringFixed(minorUnitPlaces), "0", m.amount.StringFixed(minorUnitPlaces))
	}
	return Money{amount: result}, nil
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// MulRate multiplies the amount by a fractional rate (e.g. a 0.08 tax rate)
// and rounds the result to the minor unit.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(minorUnitPlaces)}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float for response serialization.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are exactly equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// WithinMinorUnit reports whether the difference between two amounts is at
// most one minor unit. Used to compare advisory client totals against
// server-computed ones without flagging rounding noise.
func (m Money) WithinMinorUnit(other Money) bool {
	diff := m.amount.Sub(other.amount).Abs()
	return diff.LessThanOrEqual(decimal.New(1, -minorUnitPlaces))
}

// String returns the amount with exactly two decimal places, e.g. "36.44".
func (m Money) String() string {
	return m.amount.StringFixed(minorUnitPlaces)
}
