package commands

import (
	"context"

	"blip/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler orchestrates the status transition of an
// order. Fetches the order, lets the aggregate decide transition legality,
// and persists the new status within a transaction.
//
// The not-found check always precedes legality evaluation: a request against
// a missing order fails with a not-found error regardless of the requested
// status. The fetch-then-update sequence is not atomic beyond the enclosing
// transaction; two concurrent requests can both read PENDING, and the second
// write wins.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(1, order.Paid)
//
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order was not PENDING, or the target equals the current status
//	case err != nil:
//	    // infrastructure failure
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Retrieves the order by id (not-found surfaces before any status logic),
// applies ChangeStatus on the aggregate, and persists only the status field.
// Returns the updated record. No other field is ever mutated here.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeStatus(cmd.Target()); err != nil {
		return nil, err
	}

	updated, err := orderRepo.UpdateStatus(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
