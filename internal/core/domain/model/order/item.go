package order

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrItemIsNotConstructed indicates an Item that bypassed NewItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item is one line of an order: a menu product snapshot with the unit price
// at ordering time. Items are immutable once the order is created.
type Item struct {
	name                string
	unitPrice           kernel.Money
	quantity            int
	imageRef            string
	specialInstructions string
	isConstructed       bool
}

// NewItem creates a validated order line. The name is required and the
// quantity must be at least 1; the unit price is non-negative by virtue of
// the Money type.
func NewItem(name string, unitPrice kernel.Money, quantity int, imageRef, specialInstructions string) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item.name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item quantity is invalid", fmt.Errorf("%d is not at least 1", quantity))
	}
	return Item{
		name:                name,
		unitPrice:           unitPrice,
		quantity:            quantity,
		imageRef:            imageRef,
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}, nil
}

// Name returns the product name snapshot.
func (i Item) Name() string { return i.name }

// UnitPrice returns the price of a single unit at ordering time.
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// Quantity returns how many units were ordered.
func (i Item) Quantity() int { return i.quantity }

// ImageRef returns the product image reference.
func (i Item) ImageRef() string { return i.imageRef }

// SpecialInstructions returns the customer's preparation notes.
func (i Item) SpecialInstructions() string { return i.specialInstructions }

// Total returns unit price times quantity.
func (i Item) Total() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}
