package commands

import (
	"errors"
	"fmt"

	"blip/internal/pkg/errs"
	"blip/internal/pkg/guard"
)

// maxNameLength mirrors the bound enforced by the order aggregate so a bad
// payload is rejected before a transaction is opened.
const maxNameLength = 255

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order.
// Encapsulates the customer, product, and quantity; the initial status is
// not a parameter because every order starts PENDING.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("John Doe", "Laptop", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	productName  string
	quantity     int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that both names are non-empty and at most 255 characters and
// that quantity is at least 1. Returns an error if any validation fails.
func NewCreateOrderCommand(customerName string, productName string, quantity int) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setProductName(productName),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns who places the order.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// ProductName returns what is being ordered.
func (c CreateOrderCommand) ProductName() string {
	return c.productName
}

// Quantity returns the number of units ordered.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValidationError("customer name is required")
	}
	if len(customerName) > maxNameLength {
		return errs.NewValidationErrorWithCause(
			"customer name is invalid",
			fmt.Errorf("length %d exceeds %d characters", len(customerName), maxNameLength),
		)
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValidationError("product name is required")
	}
	if len(productName) > maxNameLength {
		return errs.NewValidationErrorWithCause(
			"product name is invalid",
			fmt.Errorf("length %d exceeds %d characters", len(productName), maxNameLength),
		)
	}

	c.productName = productName
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValidationErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}

	c.quantity = quantity
	return nil
}
