package token_test

import (
	"testing"
	"time"

	"blip/internal/adapters/out/token"
	"blip/internal/core/domain/model/user"
	"blip/internal/core/ports"
	"blip/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestJWTTokenService_SignAndVerify(t *testing.T) {
	t.Run("should round-trip claims through sign and verify", func(t *testing.T) {
		service := token.NewJWTTokenService(testSecret, time.Hour)
		claims := ports.Claims{UserID: 1, Email: "admin@blip.com", Role: user.RoleAdmin}

		signed, err := service.Sign(claims)
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		verified, err := service.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, claims, verified)
	})

	t.Run("should round-trip staff role", func(t *testing.T) {
		service := token.NewJWTTokenService(testSecret, time.Hour)
		claims := ports.Claims{UserID: 2, Email: "staff@blip.com", Role: user.RoleStaff}

		signed, err := service.Sign(claims)
		require.NoError(t, err)

		verified, err := service.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, user.RoleStaff, verified.Role)
	})

	t.Run("should issue distinct tokens for identical claims", func(t *testing.T) {
		service := token.NewJWTTokenService(testSecret, time.Hour)
		claims := ports.Claims{UserID: 1, Email: "admin@blip.com", Role: user.RoleAdmin}

		first, err := service.Sign(claims)
		require.NoError(t, err)
		second, err := service.Sign(claims)
		require.NoError(t, err)

		// Each token carries a unique jti
		assert.NotEqual(t, first, second)
	})
}

func TestJWTTokenService_Verify_Expired(t *testing.T) {
	t.Run("should reject expired token", func(t *testing.T) {
		service := token.NewJWTTokenService(testSecret, -time.Minute)
		claims := ports.Claims{UserID: 1, Email: "admin@blip.com", Role: user.RoleAdmin}

		signed, err := service.Sign(claims)
		require.NoError(t, err)

		_, err = service.Verify(signed)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthentication)
		assert.Contains(t, err.Error(), "token expired")
	})
}

func TestJWTTokenService_Verify_Invalid(t *testing.T) {
	t.Run("should reject token signed with a different secret", func(t *testing.T) {
		signer := token.NewJWTTokenService("other-secret", time.Hour)
		verifier := token.NewJWTTokenService(testSecret, time.Hour)

		signed, err := signer.Sign(ports.Claims{UserID: 1, Email: "admin@blip.com", Role: user.RoleAdmin})
		require.NoError(t, err)

		_, err = verifier.Verify(signed)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthentication)
		assert.Contains(t, err.Error(), "invalid token")
	})

	t.Run("should reject tampered token", func(t *testing.T) {
		service := token.NewJWTTokenService(testSecret, time.Hour)

		signed, err := service.Sign(ports.Claims{UserID: 1, Email: "admin@blip.com", Role: user.RoleAdmin})
		require.NoError(t, err)

		tampered := signed[:len(signed)-2] + "xx"

		_, err = service.Verify(tampered)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthentication)
		assert.Contains(t, err.Error(), "invalid token")
	})

	t.Run("should reject garbage input", func(t *testing.T) {
		service := token.NewJWTTokenService(testSecret, time.Hour)

		for _, input := range []string{"", "not-a-token", "a.b.c"} {
			_, err := service.Verify(input)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrAuthentication)
		}
	})

	t.Run("should reject unsigned token", func(t *testing.T) {
		service := token.NewJWTTokenService(testSecret, time.Hour)

		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"userId": 1,
			"email":  "admin@blip.com",
			"role":   "ADMIN",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.Verify(tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthentication)
	})

	t.Run("should reject token with unknown role", func(t *testing.T) {
		service := token.NewJWTTokenService(testSecret, time.Hour)

		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userId": 1,
			"email":  "admin@blip.com",
			"role":   "SUPERUSER",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := forged.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = service.Verify(tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthentication)
		assert.Contains(t, err.Error(), "invalid token")
	})
}
