package get_availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

// UseCase use case для запроса занятости слотов локалидаде
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает заполненные периоды предстоящих дат по локалидаде
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: locality=%s", req.Locality)

	if strings.TrimSpace(req.Locality) == "" {
		return nil, fmt.Errorf("%w: locality is required", ErrInvalidInput)
	}

	today := domain.DateOnly(uc.timeProvider.Now())

	slots, err := uc.bookingRepo.OccupiedSlots(ctx, req.Locality, today)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get occupied slots for locality=%s: %v", req.Locality, err)
		return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
	}

	days := buildAvailability(slots)

	uc.logger.Info("GetAvailability: locality=%s has %d dates with full periods", req.Locality, len(days))

	return &Response{
		Locality: req.Locality,
		Days:     days,
	}, nil
}
