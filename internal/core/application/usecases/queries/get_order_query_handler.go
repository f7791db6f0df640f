package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/pkg/errs"
)

// orderRow is the flat scan target for the orders table.
type orderRow struct {
	ID              uuid.UUID
	OrderNumber     string
	UserID          *uuid.UUID
	UserEmail       string
	RestaurantID    uuid.UUID
	RestaurantName  string
	RestaurantImage string

	DeliveryType   string
	AddressStreet  string
	AddressCity    string
	AddressState   string
	AddressZipCode string

	ContactFirstName string
	ContactLastName  string
	ContactEmail     string
	ContactPhone     string

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

// itemRow is the flat scan target for the order_items table.
type itemRow struct {
	Name                string
	UnitPrice           decimal.Decimal
	Quantity            int
	ImageRef            string
	SpecialInstructions string
}

// GetOrderQueryHandler retrieves one order with items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError for unknown
// orders and PermissionDeniedError when the actor is neither the owner
// nor an admin.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", query.OrderID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	if err = authorizeOrderRead(query.Actor(), row.UserID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var itemRows []itemRow
	err = h.db.WithContext(ctx).
		Table("order_items").
		Where("order_id = ?", row.ID).
		Order("position ASC").
		Find(&itemRows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return toOrderResponse(row, itemRows), nil
}

func toOrderResponse(row orderRow, itemRows []itemRow) GetOrderQueryResponse {
	items := make([]OrderItemResponse, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, OrderItemResponse{
			Name:                item.Name,
			UnitPrice:           item.UnitPrice,
			Quantity:            item.Quantity,
			ImageRef:            item.ImageRef,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	var address *AddressResponse
	if row.AddressStreet != "" {
		address = &AddressResponse{
			Street:  row.AddressStreet,
			City:    row.AddressCity,
			State:   row.AddressState,
			ZipCode: row.AddressZipCode,
		}
	}

	return GetOrderQueryResponse{
		ID:              row.ID,
		OrderNumber:     row.OrderNumber,
		UserID:          row.UserID,
		RestaurantID:    row.RestaurantID,
		RestaurantName:  row.RestaurantName,
		RestaurantImage: row.RestaurantImage,
		Items:           items,
		DeliveryType:    row.DeliveryType,
		Address:         address,
		Contact: ContactResponse{
			FirstName: row.ContactFirstName,
			LastName:  row.ContactLastName,
			Email:     row.ContactEmail,
			Phone:     row.ContactPhone,
		},
		Subtotal:           row.Subtotal,
		DeliveryFee:        row.DeliveryFee,
		Tax:                row.Tax,
		ServiceFee:         row.ServiceFee,
		Tip:                row.Tip,
		Discount:           row.Discount,
		TotalAmount:        row.TotalAmount,
		Status:             row.Status,
		PaymentMethod:      row.PaymentMethod,
		PaymentStatus:      row.PaymentStatus,
		CancellationReason: row.CancellationReason,
		CreatedAt:          row.CreatedAt,
		EstimatedDelivery:  row.EstimatedDelivery,
		DeliveredAt:        row.DeliveredAt,
		CancelledAt:        row.CancelledAt,
		Rated:              row.Rated,
		Rating:             row.Rating,
		Review:             row.Review,
	}
}
