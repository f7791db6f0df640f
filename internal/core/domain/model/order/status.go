package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
// It implements a state machine with defined transitions so orders always
// follow the business workflow. Status is independent of PaymentStatus.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> out_for_delivery ──> delivered ──> refunded
//	   │            │             │
//	   └────────────┴─────────────┴──> cancelled
//
// The preparing -> cancelled edge is a policy choice enforced at the
// application layer; the table permits it.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status for cash-on-delivery orders awaiting
	// restaurant confirmation.
	Pending

	// Confirmed indicates the restaurant accepted the order. Pre-paid
	// orders start here.
	Confirmed

	// Preparing indicates the kitchen started working on the order.
	Preparing

	// Ready indicates the order is packed and waiting for handoff.
	Ready

	// OutForDelivery indicates a courier picked the order up.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal except
	// for refunds.
	Delivered

	// Cancelled indicates the order was cancelled before handoff. Terminal.
	Cancelled

	// Refunded indicates a delivered order was refunded. Terminal.
	Refunded
)

// getStatusStrings returns the persisted string form of every Status,
// including the invalid zero value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:  "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Refunded:       "refunded",
	}
}

// getValidStatusStrings returns only the valid statuses.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Refunded:       "refunded",
	}
}

// getTransitionTable returns the allowed edges of the status machine.
// Same-state transitions are not listed; they are treated as no-ops.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {Ready, Cancelled},
		Ready:          {OutForDelivery},
		OutForDelivery: {Delivered},
		Delivered:      {Refunded},
	}
}

// StatusFromString parses a persisted or client-supplied status value.
// Unknown values are rejected as invalid arguments.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the recognized values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted snake_case name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the table allows moving to target.
// A same-state transition is always allowed as a no-op.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move to target against the transition table.
//
// Returns:
//   - (target, nil) when the edge is allowed or target equals the current state
//   - an invalid-argument error when target is not a recognized status
//   - an invalid-transition error carrying both states otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return UnknownStatus, err
	}
	if !s.CanTransitionTo(target) {
		return UnknownStatus, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// AllowsCustomerCancellation reports whether a customer may still cancel.
// Customers can only back out before the kitchen starts working.
func (s Status) AllowsCustomerCancellation() bool {
	return s == Pending || s == Confirmed
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Refunded
}
