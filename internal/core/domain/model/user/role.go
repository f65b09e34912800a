package user

import (
	"fmt"

	"blip/internal/pkg/errs"
)

// Role represents the access level of a user account.
// Authorization is purely role-based: there is no per-user order scoping.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin grants full access: creating orders and changing their status.
	RoleAdmin

	// RoleStaff grants read access to orders.
	RoleStaff
)

// getRoleStrings returns a map of Role values to their wire representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		RoleAdmin:   "ADMIN",
		RoleStaff:   "STAFF",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin: "ADMIN",
		RoleStaff: "STAFF",
	}
}

// RoleFromString parses a wire role value ("ADMIN", "STAFF").
// Returns a validation error for any other input.
func RoleFromString(value string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == value {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValidationErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", value),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are RoleAdmin and RoleStaff.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValidationErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role ("ADMIN", "STAFF").
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
