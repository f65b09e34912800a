package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"blip/internal/core/domain/model/order"
	"blip/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderNotFoundMessage is the operational message for a missing order.
const orderNotFoundMessage = "order not found"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database and returns the stored record with
// the database-assigned identifier and timestamps.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0 // let the database assign the identifier
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	created, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(created.ID(), created)
	return created, nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundErrorWithCause(
				orderNotFoundMessage,
				fmt.Errorf("no order with id %d", id),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists the aggregate's current status. Only the status
// column is written; every other field stays untouched. Returns the
// refreshed record so callers see the new updated_at value.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewNotFoundErrorWithCause(
			orderNotFoundMessage,
			fmt.Errorf("no order with id %d", aggregate.ID()),
		)
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", aggregate.ID()).Error; err != nil {
		return nil, err
	}

	updated, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(updated.ID(), updated)
	return updated, nil
}
