package order

import (
	"fmt"

	"blip/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Paid
//	          └──> Cancelled
//
// Paid and Cancelled are terminal: no transition out of them is ever legal.
// A transition is legal only when the current status is Pending and the
// requested status differs from it. The rule does not restrict which of
// Paid/Cancelled a Pending order may move to.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Every order starts Pending regardless of any status supplied by the caller.
	Pending

	// Paid indicates the order has been paid for.
	// This is a terminal state with no further transitions allowed.
	Paid

	// Cancelled indicates the order was cancelled before payment.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Paid:      "PAID",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Paid:      "PAID",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses a wire status value ("PENDING", "PAID", "CANCELLED").
// Returns a validation error for any other input.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValidationErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Paid, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValidationErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "PENDING", "PAID", or "CANCELLED" for valid statuses and
// "UNKNOWN" for invalid values. Implements fmt.Stringer and is safe to
// call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no legal outgoing transitions.
// Paid and Cancelled are terminal; Pending is not.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// TransitionTo evaluates the transition rule and returns the new status.
//
// A transition is legal only if the current status is Pending and the
// target differs from it:
//
//	legal(from, to) = (from == Pending) && (to != from)
//
// Every other combination fails, including:
//   - Pending -> Pending (same-status no-op request)
//   - Paid -> anything (terminal)
//   - Cancelled -> anything (terminal)
//
// Returns:
//   - (target, nil) on a legal transition
//   - (Unknown, error) with an invalid-transition error otherwise
//
// The rule ignores the caller's role on purpose: role gating happens in the
// authorization layer before the engine is reached.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s != Pending || target == s {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"invalid status transition",
			fmt.Errorf("cannot transition from %s to %s", s.String(), target.String()),
		)
	}

	return target, nil
}
