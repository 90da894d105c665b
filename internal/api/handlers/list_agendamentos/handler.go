package list_agendamentos

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos/models"
)

const (
	msgInvalidDate   = "formato de data invalido, esperado YYYY-MM-DD"
	msgInvalidStatus = "status invalido"
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

// Handle GET /api/backoffice/agendamentos
// Опциональные query-параметры: locality, status, date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}

	query := r.URL.Query()

	if locality := query.Get("locality"); locality != "" {
		req.Locality = &locality
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /backoffice/agendamentos - Invalid date filter %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, agendamentos.ErrInvalidInput):
			h.logger.Warn("GET /backoffice/agendamentos - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /backoffice/agendamentos - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /backoffice/agendamentos - Listed %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
