package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-AgendamentoService/internal/usecase/get_availability"
)

const (
	msgMissingLocality = "localidade ausente"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/disponibilidade/{localidade}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locality := vars["localidade"]

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Locality: locality})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /disponibilidade/{localidade} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingLocality)

		default:
			h.logger.Error("GET /disponibilidade/{localidade} - Failed to get availability: locality=%s, error=%v",
				locality, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /disponibilidade/{localidade} - Availability retrieved: locality=%s, dates=%d",
		locality, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
