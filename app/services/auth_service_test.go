package services

import (
	"testing"
	"time"

	"github.com/truethari/SocialMedia-API/app/models"
	"github.com/truethari/SocialMedia-API/app/repositories/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService(t *testing.T) {
	userRepo := mock.NewUserRepository()
	service := NewAuthService(userRepo, "test-secret", time.Hour)

	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	user := &models.User{
		FName:    "Alice",
		LName:    "Smith",
		Email:    "alice@example.com",
		Password: hash,
	}
	require.NoError(t, userRepo.Create(user))

	t.Run("login with valid credentials", func(t *testing.T) {
		token, got, err := service.Login("alice@example.com", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, _, err := service.Login("alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, _, err := service.Login("nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("login with empty credentials", func(t *testing.T) {
		_, _, err := service.Login("", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("parse issued token", func(t *testing.T) {
		token, _, err := service.Login("alice@example.com", "secret123")
		require.NoError(t, err)

		identity, err := service.ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, identity.ID)
		assert.Equal(t, "alice@example.com", identity.Email)
	})

	t.Run("parse garbage token", func(t *testing.T) {
		_, err := service.ParseToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("parse token signed with wrong key", func(t *testing.T) {
		other := NewAuthService(userRepo, "other-secret", time.Hour)
		token, _, err := other.Login("alice@example.com", "secret123")
		require.NoError(t, err)

		_, err = service.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("parse expired token", func(t *testing.T) {
		expired := NewAuthService(userRepo, "test-secret", -time.Minute)
		token, _, err := expired.Login("alice@example.com", "secret123")
		require.NoError(t, err)

		_, err = service.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("reject unsigned token", func(t *testing.T) {
		claims := authClaims{
			Email: "alice@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
