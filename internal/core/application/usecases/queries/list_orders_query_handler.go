package queries

import (
	"context"

	"gorm.io/gorm"

	"foodorder/internal/pkg/errs"
)

// ListOrdersQueryHandler retrieves pages of order summaries from the
// database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Anonymous callers are rejected; everyone
// else gets their own orders unless they are an admin.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	actor := query.Actor()
	if actor.IsAnonymous() {
		return ListOrdersQueryResponse{}, errs.NewPermissionDeniedError("list orders")
	}

	listing := h.db.WithContext(ctx).Table("orders")
	if !actor.IsAdmin {
		listing = listing.Where("user_id = ?", actor.ID.Bytes())
	}
	if status := query.Status(); status != nil {
		listing = listing.Where("status = ?", status.String())
	}
	if restaurantID := query.RestaurantID(); restaurantID != nil {
		listing = listing.Where("restaurant_id = ?", restaurantID.Bytes())
	}

	// Reusable after the Count finisher.
	listing = listing.Session(&gorm.Session{})

	var total int64
	if err := listing.Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	summaries := make([]OrderSummaryResponse, 0, query.Size())
	err := listing.
		Select("id", "order_number", "restaurant_name", "restaurant_image",
			"status", "payment_status", "total_amount", "created_at", "estimated_delivery").
		Order("created_at DESC").
		Limit(query.Size()).
		Offset((query.Page() - 1) * query.Size()).
		Find(&summaries).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders: summaries,
		Total:  total,
		Page:   query.Page(),
		Size:   query.Size(),
	}, nil
}
