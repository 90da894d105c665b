package reschedule_agendamento

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendamentoService/internal/api/handlers"
	rescheduleAgendamento "github.com/m04kA/SMC-AgendamentoService/internal/usecase/reschedule_agendamento"
)

const (
	msgInvalidRequestBody   = "corpo da requisicao invalido"
	msgInvalidDate          = "formato de data invalido, esperado YYYY-MM-DD"
	msgInvalidPeriod        = "periodo invalido, esperado manha ou tarde"
	msgMissingFields        = "campos obrigatorios ausentes ou invalidos"
	msgNotFound             = "agendamento nao encontrado"
	msgAlreadyCompleted     = "agendamento ja concluido"
	msgLimitReached         = "o agendamento ja foi reagendado uma vez"
	msgNonBusinessDay       = "a nova data deve ser um dia util"
	msgDateTooFar           = "a nova data excede o horizonte de agendamento"
	msgInsufficientLeadTime = "a nova data nao respeita a antecedencia minima de dias uteis"
	msgSlotFull             = "nao ha vagas para a nova data e periodo"
)

type Handler struct {
	useCase RescheduleAgendamentoUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAgendamentoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/agendamentos/{nota}/reagendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	noteNumber := vars["nota"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendamentos/{nota}/reagendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(noteNumber)
	if err != nil {
		h.logger.Warn("POST /agendamentos/{nota}/reagendar - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAgendamento.ErrBookingNotFound):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Booking not found: note=%s", noteNumber)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAgendamento.ErrAlreadyCompleted):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Already completed: note=%s", noteNumber)
			handlers.RespondBadRequest(w, msgAlreadyCompleted)

		case errors.Is(err, rescheduleAgendamento.ErrRescheduleLimitReached):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Limit reached: note=%s", noteNumber)
			handlers.RespondBadRequest(w, msgLimitReached)

		case errors.Is(err, rescheduleAgendamento.ErrInvalidPeriod):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Invalid period: period=%s", req.Period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, rescheduleAgendamento.ErrInvalidInput):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, rescheduleAgendamento.ErrNonBusinessDay):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Non business day: note=%s, date=%s", noteNumber, req.Date)
			handlers.RespondBadRequest(w, msgNonBusinessDay)

		case errors.Is(err, rescheduleAgendamento.ErrDateTooFarInFuture):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Date too far: note=%s, date=%s", noteNumber, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, rescheduleAgendamento.ErrInsufficientLeadTime):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Insufficient lead time: note=%s, date=%s", noteNumber, req.Date)
			handlers.RespondBadRequest(w, msgInsufficientLeadTime)

		case errors.Is(err, rescheduleAgendamento.ErrSlotFull):
			h.logger.Warn("POST /agendamentos/{nota}/reagendar - Slot full: note=%s, date=%s, period=%s",
				noteNumber, req.Date, req.Period)
			handlers.RespondConflict(w, msgSlotFull)

		default:
			h.logger.Error("POST /agendamentos/{nota}/reagendar - Failed to reschedule: note=%s, error=%v", noteNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agendamentos/{nota}/reagendar - Booking rescheduled successfully: note=%s", noteNumber)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
