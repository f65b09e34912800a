package ports

import "blip/internal/core/domain/model/user"

// Claims is the identity embedded in a session token. The engine never
// trusts a role from anywhere except a freshly verified token, so Claims is
// the only carrier of identity past the authentication boundary.
type Claims struct {
	UserID int64
	Email  string
	Role   user.Role
}

// TokenService signs and verifies stateless session tokens. Tokens are
// self-expiring; there is no server-side revocation list.
type TokenService interface {
	// Sign issues a signed token embedding the claims with the configured
	// expiry window.
	Sign(claims Claims) (string, error)

	// Verify checks the token signature and expiry and returns the embedded
	// claims. Expired tokens and tokens with an invalid signature or shape
	// fail with an authentication error.
	Verify(token string) (Claims, error)
}
