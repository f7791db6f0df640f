package http

import (
	"time"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
)

// Request bodies. Structural validation happens here via validator tags;
// domain rules (address required for delivery, status transitions) stay in
// the core.

type orderItemRequest struct {
	Name                string  `json:"name" validate:"required"`
	UnitPrice           float64 `json:"unit_price" validate:"gte=0"`
	Quantity            int     `json:"quantity" validate:"gte=1"`
	ImageRef            string  `json:"image_ref"`
	SpecialInstructions string  `json:"special_instructions"`
}

type addressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
}

type contactRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	// Email may be absent: authenticated callers fall back to their
	// account email. The at-least-one-email rule lives in the aggregate.
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"required"`
}

type createOrderRequest struct {
	RestaurantID    string             `json:"restaurant_id" validate:"required,uuid"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryType    string             `json:"delivery_type" validate:"required"`
	DeliveryAddress *addressRequest    `json:"delivery_address"`
	Contact         contactRequest     `json:"contact" validate:"required"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
	Tip             float64            `json:"tip" validate:"gte=0"`
	ClientTotal     *float64           `json:"client_total" validate:"omitempty,gte=0"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type updatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type rateOrderRequest struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Review string `json:"review"`
}

type updateTipRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
}

type applyDiscountRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
}

// Response bodies.

type orderItemResponse struct {
	Name                string          `json:"name"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Quantity            int             `json:"quantity"`
	ImageRef            string          `json:"image_ref,omitempty"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

type addressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type contactResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type orderResponse struct {
	ID              string  `json:"id"`
	OrderNumber     string  `json:"order_number"`
	UserID          *string `json:"user_id,omitempty"`
	RestaurantID    string  `json:"restaurant_id"`
	RestaurantName  string  `json:"restaurant_name"`
	RestaurantImage string  `json:"restaurant_image,omitempty"`

	Items []orderItemResponse `json:"items"`

	DeliveryType string           `json:"delivery_type"`
	Address      *addressResponse `json:"delivery_address,omitempty"`
	Contact      contactResponse  `json:"contact"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	ServiceFee  decimal.Decimal `json:"service_fee"`
	Tip         decimal.Decimal `json:"tip"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"total_amount"`

	Status             string `json:"status"`
	PaymentMethod      string `json:"payment_method"`
	PaymentStatus      string `json:"payment_status"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	CreatedAt         time.Time  `json:"created_at"`
	EstimatedDelivery time.Time  `json:"estimated_delivery"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`

	Rated  bool   `json:"rated"`
	Rating int    `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`
}

type orderSummaryResponse struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"order_number"`
	RestaurantName    string          `json:"restaurant_name"`
	RestaurantImage   string          `json:"restaurant_image,omitempty"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	CreatedAt         time.Time       `json:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
}

type listOrdersResponse struct {
	Orders []orderSummaryResponse `json:"orders"`
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
	Size   int                    `json:"size"`
}

// fromAggregate maps a freshly persisted aggregate into the response body.
// Command endpoints return this so the client sees server-side pricing and
// the assigned order number without a follow-up read.
func fromAggregate(aggregate *order.Order) orderResponse {
	items := make([]orderItemResponse, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = orderItemResponse{
			Name:                item.Name(),
			UnitPrice:           item.UnitPrice().Decimal(),
			Quantity:            item.Quantity(),
			ImageRef:            item.ImageRef(),
			SpecialInstructions: item.SpecialInstructions(),
		}
	}

	var userID *string
	if aggregate.UserID() != nil {
		s := aggregate.UserID().String()
		userID = &s
	}

	var address *addressResponse
	if aggregate.DeliveryAddress() != nil {
		address = &addressResponse{
			Street:  aggregate.DeliveryAddress().Street(),
			City:    aggregate.DeliveryAddress().City(),
			State:   aggregate.DeliveryAddress().State(),
			ZipCode: aggregate.DeliveryAddress().ZipCode(),
		}
	}

	return orderResponse{
		ID:              aggregate.ID().String(),
		OrderNumber:     aggregate.OrderNumber().String(),
		UserID:          userID,
		RestaurantID:    aggregate.RestaurantID().String(),
		RestaurantName:  aggregate.RestaurantName(),
		RestaurantImage: aggregate.RestaurantImage(),
		Items:           items,
		DeliveryType:    aggregate.DeliveryType().String(),
		Address:         address,
		Contact: contactResponse{
			FirstName: aggregate.Contact().FirstName(),
			LastName:  aggregate.Contact().LastName(),
			Email:     aggregate.Contact().Email(),
			Phone:     aggregate.Contact().Phone(),
		},
		Subtotal:           aggregate.Subtotal().Decimal(),
		DeliveryFee:        aggregate.DeliveryFee().Decimal(),
		Tax:                aggregate.Tax().Decimal(),
		ServiceFee:         aggregate.ServiceFee().Decimal(),
		Tip:                aggregate.Tip().Decimal(),
		Discount:           aggregate.Discount().Decimal(),
		TotalAmount:        aggregate.TotalAmount().Decimal(),
		Status:             aggregate.Status().String(),
		PaymentMethod:      aggregate.PaymentMethod().String(),
		PaymentStatus:      aggregate.PaymentStatus().String(),
		CancellationReason: aggregate.CancellationReason(),
		CreatedAt:          aggregate.CreatedAt(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CancelledAt:        aggregate.CancelledAt(),
		Rated:              aggregate.Rated(),
		Rating:             aggregate.Rating(),
		Review:             aggregate.Review(),
	}
}

// fromQueryResponse maps the read model into the response body.
func fromQueryResponse(model queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, len(model.Items))
	for i, item := range model.Items {
		items[i] = orderItemResponse{
			Name:                item.Name,
			UnitPrice:           item.UnitPrice,
			Quantity:            item.Quantity,
			ImageRef:            item.ImageRef,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	var userID *string
	if model.UserID != nil {
		s := model.UserID.String()
		userID = &s
	}

	var address *addressResponse
	if model.Address != nil {
		address = &addressResponse{
			Street:  model.Address.Street,
			City:    model.Address.City,
			State:   model.Address.State,
			ZipCode: model.Address.ZipCode,
		}
	}

	return orderResponse{
		ID:              model.ID.String(),
		OrderNumber:     model.OrderNumber,
		UserID:          userID,
		RestaurantID:    model.RestaurantID.String(),
		RestaurantName:  model.RestaurantName,
		RestaurantImage: model.RestaurantImage,
		Items:           items,
		DeliveryType:    model.DeliveryType,
		Address:         address,
		Contact: contactResponse{
			FirstName: model.Contact.FirstName,
			LastName:  model.Contact.LastName,
			Email:     model.Contact.Email,
			Phone:     model.Contact.Phone,
		},
		Subtotal:           model.Subtotal,
		DeliveryFee:        model.DeliveryFee,
		Tax:                model.Tax,
		ServiceFee:         model.ServiceFee,
		Tip:                model.Tip,
		Discount:           model.Discount,
		TotalAmount:        model.TotalAmount,
		Status:             model.Status,
		PaymentMethod:      model.PaymentMethod,
		PaymentStatus:      model.PaymentStatus,
		CancellationReason: model.CancellationReason,
		CreatedAt:          model.CreatedAt,
		EstimatedDelivery:  model.EstimatedDelivery,
		DeliveredAt:        model.DeliveredAt,
		CancelledAt:        model.CancelledAt,
		Rated:              model.Rated,
		Rating:             model.Rating,
		Review:             model.Review,
	}
}

func fromListResponse(model queries.ListOrdersQueryResponse) listOrdersResponse {
	summaries := make([]orderSummaryResponse, len(model.Orders))
	for i, summary := range model.Orders {
		summaries[i] = orderSummaryResponse{
			ID:                summary.ID.String(),
			OrderNumber:       summary.OrderNumber,
			RestaurantName:    summary.RestaurantName,
			RestaurantImage:   summary.RestaurantImage,
			Status:            summary.Status,
			PaymentStatus:     summary.PaymentStatus,
			TotalAmount:       summary.TotalAmount,
			CreatedAt:         summary.CreatedAt,
			EstimatedDelivery: summary.EstimatedDelivery,
		}
	}

	return listOrdersResponse{
		Orders: summaries,
		Total:  model.Total,
		Page:   model.Page,
		Size:   model.Size,
	}
}
