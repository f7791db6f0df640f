package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod identifies how the customer pays for an order.
// The method decides the initial delivery status: cash orders wait for
// restaurant confirmation, pre-paid orders start confirmed.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an invalid or undefined method.
	UnknownPaymentMethod PaymentMethod = iota

	CreditCard
	DebitCard
	PayPal
	CashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CreditCard:     "credit_card",
		DebitCard:      "debit_card",
		PayPal:         "paypal",
		CashOnDelivery: "cash_on_delivery",
	}
}

// PaymentMethodFromString parses a client-supplied payment method value.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the PaymentMethod is one of the recognized values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the persisted snake_case name of the method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// IsPrepaid reports whether payment is collected before delivery.
func (m PaymentMethod) IsPrepaid() bool {
	return m != CashOnDelivery && m != UnknownPaymentMethod
}

// InitialOrderStatus returns the delivery status a newly created order
// starts in for this payment method.
func (m PaymentMethod) InitialOrderStatus() Status {
	if m.IsPrepaid() {
		return Confirmed
	}
	return Pending
}

// PaymentStatus tracks the payment lifecycle independently of the delivery
// status. The aggregate accepts any recognized value; rules about which
// payment transitions are sane belong to the application layer.
type PaymentStatus int

const (
	// UnknownPaymentStatus represents an invalid or undefined status.
	UnknownPaymentStatus PaymentStatus = iota

	PaymentPending
	PaymentCompleted
	PaymentFailed
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
		PaymentRefunded:  "refunded",
	}
}

// PaymentStatusFromString parses a persisted or client-supplied value.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the PaymentStatus is one of the recognized values.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the persisted name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
