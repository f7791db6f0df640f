package orderrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

// casColumns are the columns written by the compare-and-set Update. Items
// are immutable after creation and deliberately excluded.
var casColumns = []string{
	"order_number",
	"email_source",
	"tip",
	"discount",
	"total_amount",
	"status",
	"payment_status",
	"cancellation_reason",
	"updated_at",
	"delivered_at",
	"cancelled_at",
	"rated",
	"rating",
	"review",
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. A unique violation on the order
// number surfaces as a ConflictError so the creation loop can regenerate
// the number and retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isOrderNumberViolation(err) {
			return errs.NewConflictErrorWithCause("orderNumber", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, conditioned on the stored status still
// matching expectedStatus. Zero rows affected means either a lost race or
// a missing order; the follow-up read tells the two apart.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select(casColumns).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConflictError("status")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// orderedItems keeps item preloading in insertion order.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// isOrderNumberViolation reports whether err is a unique-constraint
// violation on the order number column.
func isOrderNumberViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation && strings.Contains(pqErr.Constraint, "order_number")
}
