package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(role string) (string, error) {
	args := m.Called(role)
	return args.String(0), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	tokens := new(MockTokenIssuer)
	svc := NewService(hashOf(t, "segredo-forte"), tokens, nopLogger{})

	tokens.On("GenerateToken", RoleBackoffice).Return("signed-token", nil)

	token, err := svc.Login(context.Background(), "segredo-forte")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	tokens := new(MockTokenIssuer)
	svc := NewService(hashOf(t, "segredo-forte"), tokens, nopLogger{})

	token, err := svc.Login(context.Background(), "palpite-errado")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestLogin_TokenGenerationFails(t *testing.T) {
	tokens := new(MockTokenIssuer)
	svc := NewService(hashOf(t, "segredo-forte"), tokens, nopLogger{})

	tokens.On("GenerateToken", RoleBackoffice).Return("", errors.New("signing failed"))

	token, err := svc.Login(context.Background(), "segredo-forte")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInternal)
}
