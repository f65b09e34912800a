package queries

import (
	"errors"
	"time"

	"blip/internal/pkg/guard"
)

var (
	ErrCountStalePendingOrdersQueryIsNotConstructed = errors.New(
		"CountStalePendingOrdersQuery must be created via NewCountStalePendingOrdersQuery constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// CountStalePendingOrdersQuery counts orders that have stayed PENDING longer
// than a given age. Used by the background watchdog job to surface orders
// nobody has acted on.
type CountStalePendingOrdersQuery struct {
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCountStalePendingOrdersQuery creates a query counting orders created
// more than maxAge ago that are still PENDING.
func NewCountStalePendingOrdersQuery(maxAge time.Duration) (CountStalePendingOrdersQuery, error) {
	if maxAge <= 0 {
		return CountStalePendingOrdersQuery{}, ErrMaxAgeIsInvalid
	}

	return CountStalePendingOrdersQuery{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountStalePendingOrdersQueryIsNotConstructed if validation fails.
func (q CountStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountStalePendingOrdersQueryIsNotConstructed)
}

// MaxAge returns the age beyond which a PENDING order counts as stale.
func (q CountStalePendingOrdersQuery) MaxAge() time.Duration {
	return q.maxAge
}
