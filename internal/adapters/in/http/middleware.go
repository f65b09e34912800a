package http

import (
	"strings"

	"blip/internal/core/domain/model/user"
	"blip/internal/core/ports"
	"blip/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	// identityContextKey stores the verified identity in the echo context.
	identityContextKey = "blip.identity"

	tokenRequiredMessage = "authentication token is required"
	tokenInvalidMessage  = "invalid token"
	forbiddenMessage     = "you do not have permission to perform this action"
)

// Identity is the trusted caller identity produced by Authenticate.
// It only ever comes from a freshly verified token, never from the request
// body or any other caller-controlled field.
type Identity struct {
	UserID int64
	Email  string
	Role   user.Role
}

// Authenticate returns middleware that extracts and verifies the bearer
// token from the Authorization header.
//
// The header must have exactly two space-separated parts with the first
// literally "Bearer". A missing header, a malformed header, an expired
// token, or a bad signature all fail with an authentication error before
// any business logic runs. On success the identity is attached to the
// request context for downstream stages.
func Authenticate(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errs.NewAuthenticationError(tokenRequiredMessage)
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return errs.NewAuthenticationError(tokenInvalidMessage)
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return err
			}

			c.Set(identityContextKey, Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			})

			return next(c)
		}
	}
}

// Authorize returns middleware that checks the verified identity's role
// against the allowed set. A request whose role is not allowed fails with an
// authorization error and the wrapped handler never runs.
//
// A missing identity means the middleware chain is mis-ordered (Authorize
// without Authenticate); that is treated as an authentication failure, not
// a panic.
func Authorize(allowedRoles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFromContext(c)
			if !ok {
				return errs.NewAuthenticationError(tokenRequiredMessage)
			}

			for _, role := range allowedRoles {
				if identity.Role == role {
					return next(c)
				}
			}

			return errs.NewAuthorizationError(forbiddenMessage)
		}
	}
}

// IdentityFromContext retrieves the verified identity attached by
// Authenticate. The second return value is false when no identity is present.
func IdentityFromContext(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityContextKey).(Identity)
	return identity, ok
}
