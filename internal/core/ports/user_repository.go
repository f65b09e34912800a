package ports

import (
	"context"

	"blip/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
// The core only reads users (credential lookup during login); Add exists
// for seeding and tests.
type UserRepository interface {
	// Add persists a new user account and returns the stored record with
	// its repository-assigned identifier.
	Add(ctx context.Context, aggregate *user.User) (*user.User, error)

	// GetByEmail retrieves a user by exact email match.
	// Returns a not-found error when no account uses the email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
