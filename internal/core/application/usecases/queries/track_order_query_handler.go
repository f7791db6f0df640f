package queries

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"foodorder/internal/pkg/errs"
)

// TrackOrderQueryHandler retrieves one order by number for a caller who
// proves possession with the order's email.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking reads.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the query. A wrong email reports the same
// ObjectNotFoundError as an unknown number, so the endpoint does not
// reveal which order numbers exist.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("order_number = ?", query.OrderNumber().String()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber().String())
		}
		return GetOrderQueryResponse{}, err
	}

	if !emailMatches(query.Email(), row) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber().String())
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

// emailMatches accepts either the contact email given at checkout or the
// account email the order was placed under.
func emailMatches(email string, row orderRow) bool {
	if row.ContactEmail != "" && strings.EqualFold(email, row.ContactEmail) {
		return true
	}
	return row.UserEmail != "" && strings.EqualFold(email, row.UserEmail)
}
