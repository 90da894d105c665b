package create_agendamento

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	createAgendamento "github.com/m04kA/SMC-AgendamentoService/internal/usecase/create_agendamento"
)

const (
	msgInvalidRequestBody   = "corpo da requisicao invalido"
	msgInvalidDate          = "formato de data invalido, esperado YYYY-MM-DD"
	msgMissingFields        = "campos obrigatorios ausentes ou invalidos"
	msgInvalidNoteNumber    = "numero da nota invalido, esperado 709 seguido de 8 digitos"
	msgInvalidPeriod        = "periodo invalido, esperado manha ou tarde"
	msgInvalidLocality      = "localidade invalida"
	msgNonBusinessDay       = "a data deve ser um dia util"
	msgDateTooFar           = "a data excede o horizonte de agendamento"
	msgInsufficientLeadTime = "a data nao respeita a antecedencia minima de dias uteis"
	msgSlotFull             = "nao ha vagas para a data e periodo selecionados"
	msgDuplicateNote        = "ja existe um agendamento para esta nota"
)

type Handler struct {
	useCase CreateAgendamentoUseCase
	logger  Logger
}

func NewHandler(useCase CreateAgendamentoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/agendamentos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAgendamentoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendamentos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /agendamentos - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAgendamento.ErrInvalidNoteNumber):
			h.logger.Warn("POST /agendamentos - Invalid note number: note=%s", req.NoteNumber)
			handlers.RespondBadRequest(w, msgInvalidNoteNumber)

		case errors.Is(err, createAgendamento.ErrInvalidPeriod):
			h.logger.Warn("POST /agendamentos - Invalid period: period=%s", req.Period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, createAgendamento.ErrInvalidLocality):
			h.logger.Warn("POST /agendamentos - Invalid locality: locality=%s", req.Locality)
			handlers.RespondBadRequest(w, msgInvalidLocality)

		case errors.Is(err, createAgendamento.ErrInvalidInput):
			h.logger.Warn("POST /agendamentos - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createAgendamento.ErrNonBusinessDay):
			h.logger.Warn("POST /agendamentos - Non business day: note=%s, date=%s", req.NoteNumber, req.Date)
			handlers.RespondBadRequest(w, msgNonBusinessDay)

		case errors.Is(err, createAgendamento.ErrDateTooFarInFuture):
			h.logger.Warn("POST /agendamentos - Date too far: note=%s, date=%s", req.NoteNumber, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAgendamento.ErrInsufficientLeadTime):
			h.logger.Warn("POST /agendamentos - Insufficient lead time: note=%s, date=%s", req.NoteNumber, req.Date)
			handlers.RespondBadRequest(w, msgInsufficientLeadTime)

		case errors.Is(err, createAgendamento.ErrSlotFull):
			h.logger.Warn("POST /agendamentos - Slot full: date=%s, period=%s, locality=%s",
				req.Date, req.Period, req.Locality)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createAgendamento.ErrDuplicateNoteNumber):
			h.logger.Warn("POST /agendamentos - Duplicate note number: note=%s", req.NoteNumber)
			handlers.RespondConflict(w, msgDuplicateNote)

		default:
			h.logger.Error("POST /agendamentos - Failed to create booking: note=%s, error=%v", req.NoteNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agendamentos - Booking created successfully: id=%d, note=%s", result.ID, result.NoteNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
