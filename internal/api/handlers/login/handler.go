package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "corpo da requisicao invalido"
	msgMissingPassword    = "senha ausente"
	msgInvalidCredentials = "senha incorreta"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		h.logger.Warn("POST /login - Missing password")
		handlers.RespondBadRequest(w, msgMissingPassword)
		return
	}

	token, err := h.service.Login(r.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /login - Backoffice login successful")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Token: token})
}
