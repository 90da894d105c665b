package complete_agendamento

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos"
)

const (
	msgNotFound         = "agendamento nao encontrado"
	msgAlreadyCompleted = "agendamento ja concluido"
)

// CompleteResponse HTTP response model
type CompleteResponse struct {
	NoteNumber string `json:"noteNumber"`
	Status     string `json:"status"`
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

// Handle POST /api/backoffice/agendamentos/{nota}/concluir
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	noteNumber := vars["nota"]

	if err := h.service.Complete(r.Context(), noteNumber); err != nil {
		switch {
		case errors.Is(err, agendamentos.ErrBookingNotFound):
			h.logger.Warn("POST /backoffice/agendamentos/{nota}/concluir - Booking not found: note=%s", noteNumber)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, agendamentos.ErrAlreadyCompleted):
			h.logger.Warn("POST /backoffice/agendamentos/{nota}/concluir - Already completed: note=%s", noteNumber)
			handlers.RespondConflict(w, msgAlreadyCompleted)

		default:
			h.logger.Error("POST /backoffice/agendamentos/{nota}/concluir - Failed to complete: note=%s, error=%v",
				noteNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /backoffice/agendamentos/{nota}/concluir - Booking completed: note=%s", noteNumber)
	handlers.RespondJSON(w, http.StatusOK, CompleteResponse{
		NoteNumber: noteNumber,
		Status:     "completed",
	})
}
