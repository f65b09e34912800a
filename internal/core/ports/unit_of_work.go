package ports

import "context"

// UnitOfWork coordinates a database transaction spanning repository calls.
// Command handlers Begin a transaction, perform repository operations, and
// either Commit or Rollback. Repositories obtained from the unit of work
// execute inside the active transaction.
type UnitOfWork interface {
	// Begin starts a new transaction. Calling Begin on a unit of work with
	// an active transaction is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes the active transaction.
	Commit(ctx context.Context) error

	// Rollback discards the active transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the active
	// transaction, or to the base connection when none is active.
	OrderRepository() OrderRepository
}
