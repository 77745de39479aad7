package service

import (
	"context"
	"testing"

	"medequip-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := security.NewTokenManager("test-secret-at-least-32-characters-long", 60)
	svc := NewAuthService(string(hash), tokens)

	t.Run("CorrectPassword", func(t *testing.T) {
		token, err := svc.Login(ctx, "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, "battery-staple")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
