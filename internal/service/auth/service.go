package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// RoleBackoffice роль, зашиваемая в токены бэк-офиса
const RoleBackoffice = "backoffice"

// Service сервис аутентификации бэк-офиса.
// Пароль один на бэк-офис, хранится как bcrypt-хэш в конфигурации.
type Service struct {
	passwordHash []byte
	tokens       TokenIssuer
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(passwordHash string, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
		logger:       logger,
	}
}

// Login обменивает пароль бэк-офиса на подписанный bearer-токен
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("Login: invalid password attempt")
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login: bcrypt comparison failed: %v", err)
		return "", fmt.Errorf("%w: Login - bcrypt comparison: %v", ErrInternal, err)
	}

	token, err := s.tokens.GenerateToken(RoleBackoffice)
	if err != nil {
		s.logger.Error("Login: failed to generate token: %v", err)
		return "", fmt.Errorf("%w: Login - token generation: %v", ErrInternal, err)
	}

	s.logger.Info("Login: backoffice token issued")
	return token, nil
}
