package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := NewService(&config.Config{SecretKey: "test_secret"})

	token, err := service.GenerateToken(domain.Claims{
		UserID:     42,
		UserName:   "Maria",
		UserEmail:  "maria@example.com",
		UserRoleID: 2,
	})
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "maria@example.com", claims.UserEmail)
	assert.Equal(t, 2, claims.UserRoleID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	service := NewService(&config.Config{SecretKey: "test_secret"})

	otherSecret, err := NewService(&config.Config{SecretKey: "other_secret"}).GenerateToken(domain.Claims{UserID: 1})
	require.NoError(t, err)

	expired, err := service.GenerateToken(domain.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		expected error
	}{
		{name: "Token malformado", token: "not-a-token", expected: ErrInvalidToken},
		{name: "Assinado com outro segredo", token: otherSecret, expected: ErrInvalidToken},
		{name: "Token expirado", token: expired, expected: ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
