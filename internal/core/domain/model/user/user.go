package user

import (
	"errors"

	"blip/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User represents a registered account able to authenticate against the API.
// It is read-only from the core's perspective: the engine looks users up by
// email during login and never mutates them.
//
// User follows these invariants:
//   - Email must be non-empty and unique (uniqueness enforced by storage)
//   - Password hash must be non-empty and is never exposed in responses
//   - Role must be one of the valid roles (ADMIN, STAFF)
//   - Can only be created through NewUser or RestoreUser
type User struct {
	// id is the repository-assigned identifier (zero until persisted)
	id int64

	// email is the unique login identifier
	email string

	// passwordHash is the bcrypt hash of the account password
	passwordHash string

	// role determines which operations the account may perform
	role Role

	// isConstructed ensures the user was created via a factory method
	isConstructed bool
}

// NewUser creates a User that has not been persisted yet. The identifier is
// assigned by the repository on insert.
func NewUser(email string, passwordHash string, role Role) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a persisted User, including its repository-assigned
// identifier. Used by the persistence adapter when loading from storage.
func RestoreUser(id int64, email string, passwordHash string, role Role) (*User, error) {
	user, err := NewUser(email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	if err := user.setID(id); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User instance was properly constructed through a
// factory method. Returns ErrUserIsNotConstructed otherwise.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// ID returns the repository-assigned identifier (zero if not yet persisted).
func (u *User) ID() int64 {
	return u.id
}

// Email returns the unique login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash. Never include this in any
// response payload.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the account's access role.
func (u *User) Role() Role {
	return u.role
}

func (u *User) setID(id int64) error {
	if id <= 0 {
		return errs.NewValidationError("user id must be a positive integer")
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValidationError("email is required")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValidationError("password hash is required")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
