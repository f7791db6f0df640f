package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// maxPersistAttempts bounds the retry loops around order-number collisions
// on create and lost status races on update.
const maxPersistAttempts = 3

// CreateOrderCommandHandler handles the business logic for placing orders.
// Prices the cart from the restaurant catalog, builds the aggregate, and
// persists it with a bounded retry on order-number collisions. The order
// number is generated without coordination, so two concurrent checkouts
// can collide; the unique constraint decides the winner and the loser
// regenerates its number.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.Catalog
	publisher  ConfirmationPublisher
	pricing    PricingPolicy
	log        *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.Catalog,
	publisher ConfirmationPublisher,
	pricing PricingPolicy,
	log *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
		pricing:    pricing,
		log:        log,
	}
}

// Handle processes the order creation command. All monetary amounts are
// computed server-side; a client total that disagrees by more than a cent
// is logged but never trusted. Returns the persisted aggregate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	info, err := h.catalog.RestaurantInfo(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	deliveryFee := kernel.ZeroMoney()
	if cmd.DeliveryType() == order.Delivery {
		deliveryFee = info.DeliveryFee
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(order.NewOrderParams{
		ID:              kernel.NewUUID(),
		OrderNumber:     kernel.NewOrderNumber(),
		UserID:          cmd.UserID(),
		UserEmail:       cmd.UserEmail(),
		RestaurantID:    cmd.RestaurantID(),
		RestaurantName:  info.Name,
		RestaurantImage: info.Image,
		Items:           cmd.Items(),
		DeliveryType:    cmd.DeliveryType(),
		DeliveryAddress: cmd.DeliveryAddress(),
		Contact:         cmd.Contact(),
		PaymentMethod:   cmd.PaymentMethod(),
		Pricing: order.Pricing{
			DeliveryFee: deliveryFee,
			TaxRate:     h.pricing.TaxRate,
			ServiceFee:  h.pricing.ServiceFee,
			Tip:         cmd.Tip(),
		},
		EstimatedDelivery: now.Add(time.Duration(info.MaxDeliveryMinutes) * time.Minute),
		Now:               now,
	})
	if err != nil {
		return nil, err
	}

	if clientTotal := cmd.ClientTotal(); clientTotal != nil && !aggregate.TotalMatchesAdvisory(*clientTotal) {
		h.log.WarnContext(ctx, "client total disagrees with server total",
			"order_number", aggregate.OrderNumber().String(),
			"client_total", clientTotal.String(),
			"server_total", aggregate.TotalAmount().String(),
		)
	}

	for attempt := 1; ; attempt++ {
		err = h.persist(ctx, aggregate)
		if err == nil {
			break
		}

		var conflictErr *errs.ConflictError
		if !errors.As(err, &conflictErr) || conflictErr.ParamName != "orderNumber" {
			return nil, err
		}

		if attempt == maxPersistAttempts {
			return nil, errs.NewResourceExhaustedErrorWithCause("create order", attempt, err)
		}

		h.log.InfoContext(ctx, "order number collision, regenerating",
			"order_number", aggregate.OrderNumber().String(),
			"attempt", attempt,
		)
		if err = aggregate.AssignOrderNumber(kernel.NewOrderNumber()); err != nil {
			return nil, err
		}
	}

	h.publisher.PublishOrderConfirmed(aggregate)

	return aggregate, nil
}

func (h *CreateOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
