package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommandParams bundles the checkout inputs. UserID is nil for
// guest checkout; ClientTotal, when present, is the total the client
// displayed and is checked only as an advisory.
type CreateOrderCommandParams struct {
	UserID          *kernel.UUID
	UserEmail       string
	RestaurantID    kernel.UUID
	Items           []order.Item
	DeliveryType    order.DeliveryType
	DeliveryAddress *order.Address
	Contact         order.ContactInfo
	PaymentMethod   order.PaymentMethod
	Tip             kernel.Money
	ClientTotal     *kernel.Money
}

// CreateOrderCommand represents a request to place a new food order.
// Structural validation happens here; business rules such as the delivery
// address requirement live in the order aggregate.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID          *kernel.UUID
	userEmail       string
	restaurantID    kernel.UUID
	items           []order.Item
	deliveryType    order.DeliveryType
	deliveryAddress *order.Address
	contact         order.ContactInfo
	paymentMethod   order.PaymentMethod
	tip             kernel.Money
	clientTotal     *kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, that the cart is not empty, and that the delivery
// and payment enumerations hold real values.
func NewCreateOrderCommand(params CreateOrderCommandParams) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUser(params.UserID, params.UserEmail),
		orderCommand.setRestaurantID(params.RestaurantID),
		orderCommand.setItems(params.Items),
		orderCommand.setDeliveryType(params.DeliveryType),
		orderCommand.setPaymentMethod(params.PaymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.deliveryAddress = params.DeliveryAddress
	orderCommand.contact = params.Contact
	orderCommand.tip = params.Tip
	orderCommand.clientTotal = params.ClientTotal

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the ordering user's identifier, nil for guest checkout.
func (c CreateOrderCommand) UserID() *kernel.UUID {
	return c.userID
}

// UserEmail returns the authenticated user's account email.
func (c CreateOrderCommand) UserEmail() string {
	return c.userEmail
}

// RestaurantID returns the restaurant the order is placed with.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the ordered items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// DeliveryType returns whether the order is delivered or picked up.
func (c CreateOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// DeliveryAddress returns the delivery destination, nil for pickup.
func (c CreateOrderCommand) DeliveryAddress() *order.Address {
	return c.deliveryAddress
}

// Contact returns the customer contact block.
func (c CreateOrderCommand) Contact() order.ContactInfo {
	return c.contact
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Tip returns the optional tip amount.
func (c CreateOrderCommand) Tip() kernel.Money {
	return c.tip
}

// ClientTotal returns the total the client displayed, nil when not sent.
func (c CreateOrderCommand) ClientTotal() *kernel.Money {
	return c.clientTotal
}

func (c *CreateOrderCommand) setUser(userID *kernel.UUID, userEmail string) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}

	c.userID = userID
	c.userEmail = userEmail
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	c.deliveryType = deliveryType
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
