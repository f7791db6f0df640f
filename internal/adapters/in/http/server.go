// Package http exposes the order service over a JSON REST API built on
// echo. Handlers translate between HTTP and the application layer: bind
// and validate the body, build the command or query, and map core errors
// to status codes. No business logic lives here.
package http

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// Server handles the order API. It coordinates between HTTP handlers and
// application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	rateOrderHandler           commands.RateOrderCommandHandler
	updateTipHandler           commands.UpdateTipCommandHandler
	applyDiscountHandler       commands.ApplyDiscountCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	trackOrderHandler queries.TrackOrderQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	updateTipHandler commands.UpdateTipCommandHandler,
	applyDiscountHandler commands.ApplyDiscountCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		updatePaymentStatusHandler: updatePaymentStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		rateOrderHandler:           rateOrderHandler,
		updateTipHandler:           updateTipHandler,
		applyDiscountHandler:       applyDiscountHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		trackOrderHandler:          trackOrderHandler,
		validate:                   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the order API under /api/v1 with the actor
// middleware applied to every route.
func (s *Server) RegisterRoutes(e *echo.Echo, authorizer ports.Authorizer) {
	api := e.Group("/api/v1", ActorMiddleware(authorizer))

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/track", s.TrackOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	api.PATCH("/orders/:orderID/payment", s.UpdatePaymentStatus)
	api.PATCH("/orders/:orderID/tip", s.UpdateTip)
	api.PATCH("/orders/:orderID/discount", s.ApplyDiscount)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/rating", s.RateOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
// Anonymous callers are allowed: guest checkout produces an order with no
// user attached.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	params, err := s.createOrderParams(req, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAggregate(aggregate))
}

// createOrderParams converts the request body into command parameters,
// parsing enumerations and money along the way.
func (s *Server) createOrderParams(
	req createOrderRequest,
	actor ports.Actor,
) (commands.CreateOrderCommandParams, error) {
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}

	deliveryType, err := order.DeliveryTypeFromString(req.DeliveryType)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		unitPrice, priceErr := kernel.NewMoneyFromFloat(itemReq.UnitPrice)
		if priceErr != nil {
			return commands.CreateOrderCommandParams{}, priceErr
		}

		item, itemErr := order.NewItem(
			itemReq.Name, unitPrice, itemReq.Quantity,
			itemReq.ImageRef, itemReq.SpecialInstructions,
		)
		if itemErr != nil {
			return commands.CreateOrderCommandParams{}, itemErr
		}
		items = append(items, item)
	}

	var address *order.Address
	if req.DeliveryAddress != nil {
		parsed, addrErr := order.NewAddress(
			req.DeliveryAddress.Street, req.DeliveryAddress.City,
			req.DeliveryAddress.State, req.DeliveryAddress.ZipCode,
		)
		if addrErr != nil {
			return commands.CreateOrderCommandParams{}, addrErr
		}
		address = &parsed
	}

	contact, err := order.NewContactInfo(
		req.Contact.FirstName, req.Contact.LastName,
		req.Contact.Email, req.Contact.Phone,
	)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}

	tip, err := kernel.NewMoneyFromFloat(req.Tip)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}

	var clientTotal *kernel.Money
	if req.ClientTotal != nil {
		total, totalErr := kernel.NewMoneyFromFloat(*req.ClientTotal)
		if totalErr != nil {
			return commands.CreateOrderCommandParams{}, totalErr
		}
		clientTotal = &total
	}

	var userID *kernel.UUID
	var userEmail string
	if !actor.IsAnonymous() {
		id := actor.ID
		userID = &id
		userEmail = actor.Email
	}

	return commands.CreateOrderCommandParams{
		UserID:          userID,
		UserEmail:       userEmail,
		RestaurantID:    restaurantID,
		Items:           items,
		DeliveryType:    deliveryType,
		DeliveryAddress: address,
		Contact:         contact,
		PaymentMethod:   paymentMethod,
		Tip:             tip,
		ClientTotal:     clientTotal,
	}, nil
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponse(model))
}

// TrackOrder handles GET /api/v1/orders/track - looks an order up by its
// order number plus the email it was placed with. This is how guest orders
// are retrieved: possession of both values stands in for authentication,
// so no actor is consulted.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderNumber, err := kernel.OrderNumberFromString(ctx.QueryParam("order_number"))
	if err != nil {
		return badRequest(ctx, "invalid order number")
	}

	query, err := queries.NewTrackOrderQuery(orderNumber, ctx.QueryParam("email"))
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponse(model))
}

// ListOrders handles GET /api/v1/orders - lists orders for the caller.
// Supports status, restaurant_id, page and size query parameters; the
// status and restaurant filters are admin features, customers always see
// only their own orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid status filter")
		}
		status = &parsed
	}

	var restaurantID *kernel.UUID
	if raw := ctx.QueryParam("restaurant_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid restaurant id filter")
		}
		restaurantID = &parsed
	}

	page := intQueryParam(ctx, "page")
	size := intQueryParam(ctx, "size")

	query, err := queries.NewListOrdersQuery(actorFrom(ctx), status, restaurantID, page, size)
	if err != nil {
		return writeError(ctx, err)
	}

	model, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromListResponse(model))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status - moves
// an order through its lifecycle. Staff only.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// UpdatePaymentStatus handles PATCH /api/v1/orders/:orderID/payment -
// records the payment provider's verdict. Staff only.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updatePaymentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	paymentStatus, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, paymentStatus, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// UpdateTip handles PATCH /api/v1/orders/:orderID/tip - replaces the tip
// on an order. Owners only; a zero amount removes the tip.
func (s *Server) UpdateTip(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateTipRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	tip, err := kernel.NewMoneyFromFloat(req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateTipCommand(orderID, tip, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.updateTipHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// ApplyDiscount handles PATCH /api/v1/orders/:orderID/discount - grants a
// goodwill or promotional discount. Staff only.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req applyDiscountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	discount, err := kernel.NewMoneyFromFloat(req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApplyDiscountCommand(orderID, discount, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.applyDiscountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - cancels an
// order. Owners can cancel while cancellation is still allowed; staff can
// cancel within policy.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// RateOrder handles POST /api/v1/orders/:orderID/rating - leaves feedback
// on a delivered order.
func (s *Server) RateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req rateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRateOrderCommand(orderID, req.Rating, req.Review, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAggregate(aggregate))
}

// intQueryParam parses a numeric query parameter, returning zero for
// missing or malformed values so the query falls back to its defaults.
func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}
