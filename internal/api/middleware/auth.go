package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendamentoService/pkg/jwt"
)

const (
	msgMissingToken = "token de acesso ausente"
	msgInvalidToken = "token de acesso invalido ou expirado"
)

type roleCtxKey struct{}

// TokenValidator интерфейс проверки bearer-токенов
type TokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}

// Auth возвращает middleware, пропускающий только запросы с валидным
// bearer-токеном бэк-офиса
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := tokens.ValidateToken(tokenStr)
			if err != nil {
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), roleCtxKey{}, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRole достает роль из контекста запроса
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleCtxKey{}).(string)
	return role, ok
}
