// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate layer and read directly from the
// database for optimal read performance.
package queries

import (
	"errors"
	"time"

	"blip/internal/core/domain/model/order"
	"blip/internal/core/domain/model/user"
	"blip/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every order, most recently created first.
// The requester's role travels with the query for audit logging only; both
// ADMIN and STAFF see the identical full result set.
type GetAllOrdersQuery struct {
	requesterRole user.Role

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// The role parameter is carried for audit purposes and must never influence
// which rows are returned.
func NewGetAllOrdersQuery(requesterRole user.Role) GetAllOrdersQuery {
	return GetAllOrdersQuery{
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// RequesterRole returns the role of the caller, for logging only.
func (q GetAllOrdersQuery) RequesterRole() user.Role {
	return q.requesterRole
}

// GetAllOrdersQueryResponse is the read model for a single order row.
type GetAllOrdersQueryResponse struct {
	ID           int64
	CustomerName string
	ProductName  string
	Quantity     int
	Status       order.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
