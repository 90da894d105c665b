package bulk_delete_agendamentos

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos/models"
)

const (
	msgInvalidRequestBody = "corpo da requisicao invalido"
	msgEmptyNoteList      = "lista de notas vazia"
)

type Handler struct {
	service AgendamentoService
	logger  Logger
}

func NewHandler(service AgendamentoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/backoffice/agendamentos/excluir-massa
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BulkDeleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /backoffice/agendamentos/excluir-massa - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.BulkDelete(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, agendamentos.ErrInvalidInput):
			h.logger.Warn("POST /backoffice/agendamentos/excluir-massa - Empty note list")
			handlers.RespondBadRequest(w, msgEmptyNoteList)

		default:
			h.logger.Error("POST /backoffice/agendamentos/excluir-massa - Failed to bulk delete: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /backoffice/agendamentos/excluir-massa - Deleted %d bookings", result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
