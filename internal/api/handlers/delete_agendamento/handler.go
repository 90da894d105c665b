package delete_agendamento

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos"
)

const (
	msgNotFound = "agendamento nao encontrado"
	msgDeleted  = "agendamento excluido"
)

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Message string `json:"message"`
}

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

// Handle DELETE /api/backoffice/agendamentos/{nota}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	noteNumber := vars["nota"]

	if err := h.service.Delete(r.Context(), noteNumber); err != nil {
		switch {
		case errors.Is(err, agendamentos.ErrBookingNotFound):
			h.logger.Warn("DELETE /backoffice/agendamentos/{nota} - Booking not found: note=%s", noteNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /backoffice/agendamentos/{nota} - Failed to delete: note=%s, error=%v",
				noteNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /backoffice/agendamentos/{nota} - Booking deleted: note=%s", noteNumber)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Message: msgDeleted})
}
