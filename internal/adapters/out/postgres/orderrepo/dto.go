// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The order number carries a unique index; the creation retry
// loop depends on the resulting constraint violation.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber string     `gorm:"uniqueIndex;not null"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	UserEmail   string     `gorm:"index"`

	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	RestaurantName  string
	RestaurantImage string

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	DeliveryType string
	Address      AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Contact      ContactDTO `gorm:"embedded;embeddedPrefix:contact_"`
	EmailSource  string

	Subtotal    decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(10,2)"`
	Tax         decimal.Decimal `gorm:"type:numeric(10,2)"`
	TaxRate     decimal.Decimal `gorm:"type:numeric(6,4)"`
	ServiceFee  decimal.Decimal `gorm:"type:numeric(10,2)"`
	Tip         decimal.Decimal `gorm:"type:numeric(10,2)"`
	Discount    decimal.Decimal `gorm:"type:numeric(10,2)"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2)"`

	Status             string `gorm:"index;not null"`
	PaymentMethod      string `gorm:"not null"`
	PaymentStatus      string `gorm:"not null"`
	CancellationReason string

	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
	CancelledAt       *time.Time

	Rated  bool
	Rating int
	Review string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line. Items are immutable after
// creation, so only Add ever writes them.
type ItemDTO struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	OrderID             uuid.UUID `gorm:"type:uuid;index;not null"`
	Position            int
	Name                string
	UnitPrice           decimal.Decimal `gorm:"type:numeric(10,2)"`
	Quantity            int
	ImageRef            string
	SpecialInstructions string
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded delivery address within the order
// table. All columns are empty for pickup orders.
type AddressDTO struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// ContactDTO represents the embedded contact block within the order table.
type ContactDTO struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	var address AddressDTO
	if a := aggregate.DeliveryAddress(); a != nil {
		address = AddressDTO{
			Street:  a.Street(),
			City:    a.City(),
			State:   a.State(),
			ZipCode: a.ZipCode(),
		}
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:             aggregate.ID().Bytes(),
			Position:            i,
			Name:                item.Name(),
			UnitPrice:           item.UnitPrice().Decimal(),
			Quantity:            item.Quantity(),
			ImageRef:            item.ImageRef(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	contact := aggregate.Contact()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber().String(),
		UserID:          userID,
		UserEmail:       aggregate.UserEmail(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		RestaurantName:  aggregate.RestaurantName(),
		RestaurantImage: aggregate.RestaurantImage(),
		Items:           items,
		DeliveryType:    aggregate.DeliveryType().String(),
		Address:         address,
		Contact: ContactDTO{
			FirstName: contact.FirstName(),
			LastName:  contact.LastName(),
			Email:     contact.Email(),
			Phone:     contact.Phone(),
		},
		EmailSource:        aggregate.EmailSource().String(),
		Subtotal:           aggregate.Subtotal().Decimal(),
		DeliveryFee:        aggregate.DeliveryFee().Decimal(),
		Tax:                aggregate.Tax().Decimal(),
		TaxRate:            aggregate.TaxRate(),
		ServiceFee:         aggregate.ServiceFee().Decimal(),
		Tip:                aggregate.Tip().Decimal(),
		Discount:           aggregate.Discount().Decimal(),
		TotalAmount:        aggregate.TotalAmount().Decimal(),
		Status:             aggregate.Status().String(),
		PaymentMethod:      aggregate.PaymentMethod().String(),
		PaymentStatus:      aggregate.PaymentStatus().String(),
		CancellationReason: aggregate.CancellationReason(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CancelledAt:        aggregate.CancelledAt(),
		Rated:              aggregate.Rated(),
		Rating:             aggregate.Rating(),
		Review:             aggregate.Review(),
	}
}

// toDomain converts a database DTO to an order aggregate using
// RestoreOrder, which re-checks the monetary invariant against the stored
// components.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	deliveryType, err := order.DeliveryTypeFromString(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	var address *order.Address
	if dto.Address.Street != "" {
		a, addrErr := order.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.ZipCode)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a
	}

	contact, err := order.NewContactInfo(
		dto.Contact.FirstName, dto.Contact.LastName, dto.Contact.Email, dto.Contact.Phone)
	if err != nil {
		return nil, err
	}

	emailSource, err := order.EmailSourceFromString(dto.EmailSource)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoneyFromDecimal(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(
			itemDTO.Name, unitPrice, itemDTO.Quantity, itemDTO.ImageRef, itemDTO.SpecialInstructions)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoneyFromDecimal(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoneyFromDecimal(dto.Tax)
	if err != nil {
		return nil, err
	}
	serviceFee, err := kernel.NewMoneyFromDecimal(dto.ServiceFee)
	if err != nil {
		return nil, err
	}
	tip, err := kernel.NewMoneyFromDecimal(dto.Tip)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoneyFromDecimal(dto.Discount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		OrderNumber:        number,
		UserID:             userID,
		UserEmail:          dto.UserEmail,
		RestaurantID:       restaurantID,
		RestaurantName:     dto.RestaurantName,
		RestaurantImage:    dto.RestaurantImage,
		Items:              items,
		DeliveryType:       deliveryType,
		DeliveryAddress:    address,
		Contact:            contact,
		EmailSource:        emailSource,
		DeliveryFee:        deliveryFee,
		Tax:                tax,
		TaxRate:            dto.TaxRate,
		ServiceFee:         serviceFee,
		Tip:                tip,
		Discount:           discount,
		Status:             status,
		PaymentMethod:      paymentMethod,
		PaymentStatus:      paymentStatus,
		CancellationReason: dto.CancellationReason,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
		EstimatedDelivery:  dto.EstimatedDelivery,
		DeliveredAt:        dto.DeliveredAt,
		CancelledAt:        dto.CancelledAt,
		Rated:              dto.Rated,
		Rating:             dto.Rating,
		Review:             dto.Review,
	})
}
