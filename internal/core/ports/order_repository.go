package ports

import (
	"context"

	"blip/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository assigns identifiers and timestamps, so write operations
// return the stored aggregate with those fields populated.
type OrderRepository interface {
	// Add persists a new order aggregate to storage and returns the stored
	// record with its repository-assigned identifier and timestamps.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order aggregate by its identifier.
	// Returns a not-found error when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus persists the aggregate's current status. No other field
	// is written. Returns the updated record with its refreshed timestamp,
	// or a not-found error when the order no longer exists.
	UpdateStatus(ctx context.Context, aggregate *order.Order) (*order.Order, error)
}
