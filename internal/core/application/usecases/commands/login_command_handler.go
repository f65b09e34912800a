package commands

import (
	"context"
	"errors"

	"blip/internal/core/domain/model/user"
	"blip/internal/core/ports"
	"blip/internal/pkg/errs"
)

// invalidCredentialsMessage is returned for an unknown email and for a wrong
// password alike, so responses never reveal which emails are registered.
const invalidCredentialsMessage = "invalid credentials"

// LoginCommandResponse carries the issued token and the public view of the
// authenticated user. The password hash is never part of it.
type LoginCommandResponse struct {
	AccessToken string
	User        LoginUserResponse
}

// LoginUserResponse is the public user view returned after login.
type LoginUserResponse struct {
	ID    int64
	Email string
	Role  user.Role
}

// LoginCommandHandler authenticates a credential pair and issues a session
// token. Reads the credential store, verifies the password hash, and signs
// claims for the token service; user records are never mutated.
//
// Example:
//
//	handler := NewLoginCommandHandler(userRepo, passwords, tokens)
//	cmd := NewLoginCommand("admin@blip.com", "admin123")
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAuthentication) {
//	    // wrong password or unknown email, same error either way
//	}
type LoginCommandHandler struct {
	userRepository ports.UserRepository
	passwords      ports.PasswordVerifier
	tokens         ports.TokenService
}

// NewLoginCommandHandler creates a handler for login operations.
// Requires the credential store, a password verifier, and a token service.
func NewLoginCommandHandler(
	userRepository ports.UserRepository,
	passwords ports.PasswordVerifier,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{
		userRepository: userRepository,
		passwords:      passwords,
		tokens:         tokens,
	}
}

// Handle processes the login command.
// Looks the user up by exact email, verifies the password against the stored
// hash, and issues a signed token embedding {userId, email, role}. An unknown
// email and a failed password check both return the same authentication
// error. Repository failures other than not-found pass through unmodified.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return LoginCommandResponse{}, err
	}

	account, err := h.userRepository.GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginCommandResponse{}, errs.NewAuthenticationError(invalidCredentialsMessage)
	}
	if err != nil {
		return LoginCommandResponse{}, err
	}

	if err = h.passwords.Compare(account.PasswordHash(), cmd.Password()); err != nil {
		return LoginCommandResponse{}, errs.NewAuthenticationError(invalidCredentialsMessage)
	}

	token, err := h.tokens.Sign(ports.Claims{
		UserID: account.ID(),
		Email:  account.Email(),
		Role:   account.Role(),
	})
	if err != nil {
		return LoginCommandResponse{}, err
	}

	return LoginCommandResponse{
		AccessToken: token,
		User: LoginUserResponse{
			ID:    account.ID(),
			Email: account.Email(),
			Role:  account.Role(),
		},
	}, nil
}
