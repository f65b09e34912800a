package commands

import (
	"errors"

	"blip/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
)

// LoginCommand represents a request to authenticate with email and password.
//
// Empty email or password is accepted here on purpose: missing credentials
// are an authentication failure ("invalid credentials"), not a malformed
// request, so the handler must see them rather than the validator.
type LoginCommand struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command. No field validation happens here;
// any credential pair is a legal input and simply fails authentication when
// it does not match an account.
func NewLoginCommand(email string, password string) LoginCommand {
	return LoginCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginCommandIsNotConstructed if validation fails.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to verify.
func (c LoginCommand) Password() string {
	return c.password
}
