package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// DeliveryType distinguishes courier delivery from customer pickup.
// A delivery order must carry a delivery address; a pickup order need not.
type DeliveryType int

const (
	// UnknownDeliveryType represents an invalid or undefined type.
	UnknownDeliveryType DeliveryType = iota

	Delivery
	Pickup
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		Delivery: "delivery",
		Pickup:   "pickup",
	}
}

// DeliveryTypeFromString parses a client-supplied delivery type value.
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	for dt, str := range getDeliveryTypeStrings() {
		if str == s {
			return dt, nil
		}
	}
	return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
		"deliveryType", fmt.Errorf("%q is not a valid delivery type", s))
}

// Validate checks that the DeliveryType is one of the recognized values.
func (t DeliveryType) Validate() error {
	if _, ok := getDeliveryTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryType", fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

// String returns the persisted name of the delivery type.
func (t DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// ErrAddressIsNotConstructed indicates an Address that bypassed NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the delivery destination. It is an immutable value object;
// all four components are required.
type Address struct {
	street        string
	city          string
	state         string
	zipCode       string
	isConstructed bool
}

// NewAddress creates a validated delivery address. Every component must be
// non-empty; the first missing one is reported.
func NewAddress(street, city, state, zipCode string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("deliveryAddress.street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("deliveryAddress.city")
	}
	if state == "" {
		return Address{}, errs.NewValueIsRequiredError("deliveryAddress.state")
	}
	if zipCode == "" {
		return Address{}, errs.NewValueIsRequiredError("deliveryAddress.zipCode")
	}
	return Address{
		street:        street,
		city:          city,
		state:         state,
		zipCode:       zipCode,
		isConstructed: true,
	}, nil
}

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// State returns the state or region of the address.
func (a Address) State() string { return a.state }

// ZipCode returns the postal code of the address.
func (a Address) ZipCode() string { return a.zipCode }

// Validate ensures the address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}
