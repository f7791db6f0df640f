// Package queries contains read-only operations for retrieving order state.
// Implements the Query side of the CQRS architecture: handlers read
// straight from the database into response models, bypassing the aggregate
// and its invariant checks.
package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with full detail. Customers can only
// read their own orders; admins can read any.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   ports.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch a single order.
func NewGetOrderQuery(orderID kernel.UUID, actor ports.Actor) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	orderQuery.orderID = orderID
	orderQuery.actor = actor
	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the identity reading the order.
func (q GetOrderQuery) Actor() ports.Actor {
	return q.actor
}

// OrderItemResponse is one line of an order in a query response.
type OrderItemResponse struct {
	Name                string
	UnitPrice           decimal.Decimal
	Quantity            int
	ImageRef            string
	SpecialInstructions string
}

// AddressResponse is the delivery destination in a query response.
type AddressResponse struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// ContactResponse is the customer contact block in a query response.
type ContactResponse struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID              uuid.UUID
	OrderNumber     string
	UserID          *uuid.UUID
	RestaurantID    uuid.UUID
	RestaurantName  string
	RestaurantImage string

	Items []OrderItemResponse

	DeliveryType string
	Address      *AddressResponse
	Contact      ContactResponse

	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	ServiceFee  decimal.Decimal
	Tip         decimal.Decimal
	Discount    decimal.Decimal
	TotalAmount decimal.Decimal

	Status             string
	PaymentMethod      string
	PaymentStatus      string
	CancellationReason string

	CreatedAt         time.Time
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
	CancelledAt       *time.Time

	Rated  bool
	Rating int
	Review string
}
