// Package token implements the TokenService port with HS256-signed JWTs.
// Tokens are stateless and self-expiring; verification rejects expired
// tokens, bad signatures, and unexpected signing methods.
package token

import (
	"errors"
	"fmt"
	"time"

	"blip/internal/core/domain/model/user"
	"blip/internal/core/ports"
	"blip/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenExpiredMessage = "token expired"
	tokenInvalidMessage = "invalid token"
)

// sessionClaims is the JWT payload: the identity fields plus the registered
// claims (expiry, issued-at, token id).
type sessionClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService signs and verifies session tokens with a shared HMAC secret.
// The secret and token lifetime come from configuration and never change at
// runtime.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService creates a token service signing with the given secret
// and issuing tokens valid for ttl.
func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign issues a signed token embedding the claims. Each token carries a
// unique id (jti) and expires after the configured lifetime.
func (s *JWTTokenService) Sign(claims ports.Claims) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errs.NewInfrastructureError("failed to sign token", err)
	}

	return signed, nil
}

// Verify checks the token signature and expiry and returns the embedded
// claims. An expired token fails with "token expired"; any other defect
// (tampered signature, wrong algorithm, malformed payload, unknown role)
// fails with "invalid token". Both are authentication errors.
func (s *JWTTokenService) Verify(tokenString string) (ports.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Claims{}, errs.NewAuthenticationErrorWithCause(tokenExpiredMessage, err)
		}
		return ports.Claims{}, errs.NewAuthenticationErrorWithCause(tokenInvalidMessage, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return ports.Claims{}, errs.NewAuthenticationError(tokenInvalidMessage)
	}

	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return ports.Claims{}, errs.NewAuthenticationErrorWithCause(tokenInvalidMessage, err)
	}

	return ports.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}
