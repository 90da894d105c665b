package reschedule_agendamento

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AgendamentoService/internal/infra/storage/agendamento"
)

// UseCase use case для единственного разрешённого переноса агендаменто
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	horizonDays int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	horizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		horizonDays:  horizonDays,
	}
}

// Execute выполняет перенос агендаменто.
// Право на перенос проверяется до валидации новой даты; условный UPDATE в
// репозитории дополнительно защищает инвариант "не более одного переноса".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAgendamento: note=%s, date=%s, period=%s",
		req.NoteNumber, req.Date.Format(domain.DateFormat), req.Period)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAgendamento: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 3. Проверка права на перенос, слота и запись в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByNoteNumber(txCtx, req.NoteNumber)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleAgendamento: note=%s not found", req.NoteNumber)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleAgendamento: failed to get booking note=%s: %v", req.NoteNumber, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.1. Право на перенос: завершённый статус важнее исчерпанного лимита
		if booking.IsCompleted() {
			uc.logger.Warn("RescheduleAgendamento: note=%s already completed", req.NoteNumber)
			return ErrAlreadyCompleted
		}
		if booking.RescheduleCount >= domain.MaxRescheduleCount {
			uc.logger.Warn("RescheduleAgendamento: note=%s reschedule limit reached", req.NoteNumber)
			return ErrRescheduleLimitReached
		}

		// 3.2. Считаем занятость целевого слота
		occupancy, err := uc.bookingRepo.CountSlot(txCtx, domain.DateOnly(req.Date), req.Period, booking.Locality)
		if err != nil {
			uc.logger.Error("RescheduleAgendamento: failed to count slot: %v", err)
			return fmt.Errorf("%w: failed to count slot: %v", ErrInternal, err)
		}

		// 3.3. Новая дата проходит те же правила, что и при создании
		if err := domain.ValidateSlot(req.Date, now, occupancy, uc.horizonDays); err != nil {
			uc.logger.Warn("RescheduleAgendamento: slot rules rejected date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
			return mapSlotRulesError(err)
		}

		// 3.4. Условный UPDATE (status <> completed AND reschedule_count = 0)
		if err := uc.bookingRepo.Reschedule(txCtx, req.NoteNumber, domain.DateOnly(req.Date), req.Period); err != nil {
			if errors.Is(err, bookingRepo.ErrNotReschedulable) {
				uc.logger.Warn("RescheduleAgendamento: conditional update rejected note=%s", req.NoteNumber)
				return ErrRescheduleLimitReached
			}
			uc.logger.Error("RescheduleAgendamento: failed to reschedule note=%s: %v", req.NoteNumber, err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		// 3.5. Перечитываем обновлённую запись
		updated, err := uc.bookingRepo.GetByNoteNumber(txCtx, req.NoteNumber)
		if err != nil {
			uc.logger.Error("RescheduleAgendamento: failed to reload booking note=%s: %v", req.NoteNumber, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAgendamento: successfully rescheduled note=%s to %s/%s",
		result.NoteNumber, result.CurrentDate.Format(domain.DateFormat), result.CurrentPeriod)

	return fromDomain(result), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.NoteNumber) == "" {
		return fmt.Errorf("%w: noteNumber is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidPeriod(req.Period) {
		return ErrInvalidPeriod
	}

	return nil
}

// mapSlotRulesError транслирует ошибки доменных правил в ошибки usecase
func mapSlotRulesError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNonBusinessDay):
		return ErrNonBusinessDay
	case errors.Is(err, domain.ErrHorizonExceeded):
		return ErrDateTooFarInFuture
	case errors.Is(err, domain.ErrInsufficientLeadTime):
		return ErrInsufficientLeadTime
	case errors.Is(err, domain.ErrSlotFull):
		return ErrSlotFull
	default:
		return fmt.Errorf("%w: unexpected slot rules error: %v", ErrInternal, err)
	}
}
