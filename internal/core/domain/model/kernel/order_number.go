package kernel

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"foodorder/internal/pkg/errs"
)

const (
	orderNumberPrefix       = "ORD"
	orderNumberSuffixLength = 4
	orderNumberAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ErrOrderNumberIsNotConstructed indicates a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is the human-readable, unique order identifier, e.g.
// "ORDM3K9F2A17XQ". It combines a time-based component with a short random
// suffix: readable for customers and support staff, collision-resistant
// enough for a bounded regenerate-and-retry loop at insert time. It is not
// cryptographically secure; uniqueness is ultimately enforced by the
// repository's unique constraint.
type OrderNumber struct {
	value string
}

// NewOrderNumber generates a fresh order number from the current time and
// a random suffix.
func NewOrderNumber() OrderNumber {
	timePart := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, orderNumberSuffixLength)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}

	return OrderNumber{value: orderNumberPrefix + timePart + string(suffix)}
}

// OrderNumberFromString reconstructs an order number from persistence.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !strings.HasPrefix(s, orderNumberPrefix) || len(s) <= len(orderNumberPrefix) {
		return OrderNumber{}, errs.NewValueIsInvalidError("orderNumber")
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number text.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNumberIsNotConstructed for the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
