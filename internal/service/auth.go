package service

import (
	"context"
	"errors"

	"medequip-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	passwordHash string
	tokens       security.TokenManager
}

func NewAuthService(adminPasswordHash string, tokens security.TokenManager) AuthService {
	return &authService{
		passwordHash: adminPasswordHash,
		tokens:       tokens,
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateAdminToken()
}
