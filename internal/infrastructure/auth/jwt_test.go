package auth

import (
	"testing"
	"time"

	"github.com/crediario/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-test-secret-test-secret!",
		TokenExpiration: expiration,
		Issuer:          "crediario-test",
	})
}

func TestJWTServiceAdminToken(t *testing.T) {
	service := newTestService(time.Hour)

	token, err := service.GenerateAdminToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)

	claims, err := service.ValidateToken(token.Value)
	require.NoError(t, err)

	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Username)
	assert.Empty(t, claims.CustomerID)
	assert.Equal(t, "crediario-test", claims.Issuer)
}

func TestJWTServiceCustomerToken(t *testing.T) {
	service := newTestService(time.Hour)
	customerID := uuid.New()

	token, err := service.GenerateCustomerToken(customerID)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token.Value)
	require.NoError(t, err)

	assert.Equal(t, RoleCustomer, claims.Role)
	assert.Equal(t, customerID.String(), claims.CustomerID)
}

func TestJWTServiceValidateToken(t *testing.T) {
	t.Run("rejects garbage", func(t *testing.T) {
		service := newTestService(time.Hour)
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		service := newTestService(-time.Minute)
		token, err := service.GenerateAdminToken("admin")
		require.NoError(t, err)

		_, err = service.ValidateToken(token.Value)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		service := newTestService(time.Hour)
		other := NewJWTService(config.JWTConfig{
			Secret:          "another-secret-another-secret-other!",
			TokenExpiration: time.Hour,
			Issuer:          "crediario-test",
		})

		token, err := other.GenerateAdminToken("admin")
		require.NoError(t, err)

		_, err = service.ValidateToken(token.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAdminAuthenticator(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	require.NoError(t, err)

	authenticator := NewAdminAuthenticator(config.AdminConfig{
		Username:     "admin",
		PasswordHash: hash,
	})

	assert.True(t, authenticator.Verify("admin", "s3nha-forte"))
	assert.False(t, authenticator.Verify("admin", "errada"))
	assert.False(t, authenticator.Verify("root", "s3nha-forte"))
}
