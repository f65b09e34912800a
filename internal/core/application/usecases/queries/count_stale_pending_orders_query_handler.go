package queries

import (
	"context"
	"time"

	"blip/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CountStalePendingOrdersQueryHandler counts PENDING orders older than the
// query's age threshold. Read-only; feeds the watchdog job's log line.
type CountStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountStalePendingOrdersQueryHandler creates a handler for stale-order counting.
// Requires a GORM database connection for query execution.
func NewCountStalePendingOrdersQueryHandler(db *gorm.DB) CountStalePendingOrdersQueryHandler {
	return CountStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the count. An order is stale when its status is PENDING
// and it was created more than MaxAge before now.
func (h CountStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountStalePendingOrdersQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	cutoff := time.Now().Add(-query.MaxAge())

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ? AND created_at < ?
	`, int(order.Pending), cutoff).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
