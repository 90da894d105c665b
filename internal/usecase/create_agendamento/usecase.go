package create_agendamento

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AgendamentoService/internal/infra/storage/agendamento"
)

// UseCase use case для создания агендаменто
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	horizonDays int
	localities  []string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	horizonDays int,
	localities []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		horizonDays:  horizonDays,
		localities:   localities,
	}
}

// Execute выполняет use case создания агендаменто.
// Проверка вместимости слота и вставка выполняются в сериализуемой
// транзакции, чтобы два конкурентных запроса не переполнили слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAgendamento: note=%s, locality=%s, date=%s, period=%s",
		req.NoteNumber, req.Locality, req.Date.Format(domain.DateFormat), req.Period)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.localities); err != nil {
		uc.logger.Warn("CreateAgendamento: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Booking

	// 3. Проверка слота и вставка в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Считаем занятость слота (FOR UPDATE внутри транзакции)
		occupancy, err := uc.bookingRepo.CountSlot(txCtx, domain.DateOnly(req.Date), req.Period, req.Locality)
		if err != nil {
			uc.logger.Error("CreateAgendamento: failed to count slot: %v", err)
			return fmt.Errorf("%w: failed to count slot: %v", ErrInternal, err)
		}

		// 3.2. Применяем правила слота (выходной / горизонт / запас / вместимость)
		if err := domain.ValidateSlot(req.Date, now, occupancy, uc.horizonDays); err != nil {
			uc.logger.Warn("CreateAgendamento: slot rules rejected date=%s: %v",
				req.Date.Format(domain.DateFormat), err)
			return mapSlotRulesError(err)
		}

		// 3.3. Создаем агендаменто: original и current совпадают при создании
		booking := &domain.Booking{
			NoteNumber:         req.NoteNumber,
			InstallationNumber: req.InstallationNumber,
			ResponsibleParty:   req.ResponsibleParty,
			Locality:           req.Locality,
			OriginalDate:       domain.DateOnly(req.Date),
			OriginalPeriod:     req.Period,
			CurrentDate:        domain.DateOnly(req.Date),
			CurrentPeriod:      req.Period,
			Status:             domain.StatusScheduled,
			RescheduleCount:    0,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateNoteNumber) {
				uc.logger.Warn("CreateAgendamento: duplicate note number %s", req.NoteNumber)
				return ErrDuplicateNoteNumber
			}
			uc.logger.Error("CreateAgendamento: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAgendamento: successfully created booking id=%d note=%s",
		result.ID, result.NoteNumber)

	return fromDomain(result), nil
}
