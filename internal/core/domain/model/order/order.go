package order

import (
	"errors"
	"fmt"
	"time"

	"blip/internal/pkg/errs"
)

// maxNameLength is the upper bound for customer and product names.
const maxNameLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation (Pending) to one of the
// terminal states (Paid or Cancelled).
//
// Order follows these invariants:
//   - Customer and product names must be non-empty and at most 255 characters
//   - Quantity must be at least 1
//   - Status is always one of Pending, Paid, Cancelled
//   - New orders always start Pending, overriding any caller-supplied status
//   - After creation only the status may change, and only via ChangeStatus
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the repository-assigned identifier (zero until persisted)
	id int64

	// customerName identifies who placed the order
	customerName string

	// productName identifies what was ordered
	productName string

	// quantity is the number of units ordered (at least 1)
	quantity int

	// status represents the current state in the order lifecycle
	status Status

	// createdAt and updatedAt are repository-assigned timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order always starts in
// Pending status: there is no way to supply a different initial status, which
// enforces the creation invariant at the type level.
//
// Parameters:
//   - customerName: who placed the order (non-empty, at most 255 characters)
//   - productName: what was ordered (non-empty, at most 255 characters)
//   - quantity: number of units (at least 1)
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
//
// The identifier and timestamps stay zero until the repository persists the
// order and assigns them.
func NewOrder(customerName string, productName string, quantity int) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerName(customerName),
		order.setProductName(productName),
		order.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs a persisted Order, including its
// repository-assigned identifier, status, and timestamps. Used by the
// persistence adapter when loading from storage.
func RestoreOrder(
	id int64,
	customerName string,
	productName string,
	quantity int,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order, err := NewOrder(customerName, productName, quantity)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their repository-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the repository-assigned identifier (zero if not yet persisted).
func (o *Order) ID() int64 {
	return o.id
}

// CustomerName returns who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ProductName returns what was ordered.
func (o *Order) ProductName() string {
	return o.productName
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the repository-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the repository-assigned last-update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to the requested status.
//
// This method enforces the transition rule: the order must currently be
// Pending and the target must differ from the current status. Paid and
// Cancelled orders reject every request. No other field is mutated:
// customer name, product name, and quantity are immutable after creation.
//
// Returns:
//   - nil on a legal transition
//   - an invalid-transition error otherwise, leaving the order unchanged
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the repository-assigned identifier.
// This is a private method used only during restoration.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValidationError("order id must be a positive integer")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValidationError("customer name is required")
	}
	if len(customerName) > maxNameLength {
		return errs.NewValidationErrorWithCause(
			"customer name is invalid",
			fmt.Errorf("length %d exceeds %d characters", len(customerName), maxNameLength),
		)
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValidationError("product name is required")
	}
	if len(productName) > maxNameLength {
		return errs.NewValidationErrorWithCause(
			"product name is invalid",
			fmt.Errorf("length %d exceeds %d characters", len(productName), maxNameLength),
		)
	}
	o.productName = productName
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValidationErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
