package get_agendamento

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos"
)

const (
	msgMissingNote = "numero da nota ausente"
	msgNotFound    = "agendamento nao encontrado"
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

// Handle GET /api/agendamentos/{nota}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	noteNumber := vars["nota"]
	if noteNumber == "" {
		h.logger.Warn("GET /agendamentos/{nota} - Missing note number")
		handlers.RespondBadRequest(w, msgMissingNote)
		return
	}

	booking, err := h.service.GetByNote(r.Context(), noteNumber)
	if err != nil {
		switch {
		case errors.Is(err, agendamentos.ErrBookingNotFound):
			h.logger.Warn("GET /agendamentos/{nota} - Booking not found: note=%s", noteNumber)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /agendamentos/{nota} - Failed to get booking: note=%s, error=%v", noteNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agendamentos/{nota} - Booking retrieved successfully: note=%s", noteNumber)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
