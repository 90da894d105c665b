package agendamentos

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AgendamentoService/internal/infra/storage/agendamento"
	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos/models"
)

// Service сервис простых операций над агендаментами
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса агендаментов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByNote получает агендаменто по номеру нотификации вместе с признаком
// возможности переноса и причиной блокировки
func (s *Service) GetByNote(ctx context.Context, noteNumber string) (*models.BookingDetailsResponse, error) {
	s.logger.Info("GetByNote: fetching booking note=%s", noteNumber)

	booking, err := s.bookingRepo.GetByNoteNumber(ctx, noteNumber)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByNote: booking note=%s not found", noteNumber)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByNote: repository error for note=%s: %v", noteNumber, err)
		return nil, fmt.Errorf("%w: GetByNote - repository error: %v", ErrInternal, err)
	}

	block := domain.RescheduleBlockOf(booking, s.timeProvider.Now())

	s.logger.Info("GetByNote: successfully fetched note=%s (block=%q)", noteNumber, block)
	return models.FromDomainBookingWithEligibility(booking, block), nil
}

// List получает агендаменты с фильтрацией по локалидаде, статусу и дате.
// Доступно только бэк-офису.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings (locality=%v, status=%v, date=%v)",
		req.Locality, req.Status, req.Date)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Complete переводит агендаменто в терминальный статус completed.
// Повторное завершение отклоняется.
func (s *Service) Complete(ctx context.Context, noteNumber string) error {
	s.logger.Info("Complete: completing booking note=%s", noteNumber)

	booking, err := s.bookingRepo.GetByNoteNumber(ctx, noteNumber)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking note=%s not found", noteNumber)
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for note=%s: %v", noteNumber, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if booking.IsCompleted() {
		s.logger.Warn("Complete: booking note=%s already completed", noteNumber)
		return ErrAlreadyCompleted
	}

	if err := s.bookingRepo.Complete(ctx, noteNumber); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking note=%s not found during update", noteNumber)
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for note=%s: %v", noteNumber, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed booking note=%s", noteNumber)
	return nil
}

// Delete удаляет агендаменто по номеру нотификации
func (s *Service) Delete(ctx context.Context, noteNumber string) error {
	s.logger.Info("Delete: deleting booking note=%s", noteNumber)

	if err := s.bookingRepo.Delete(ctx, noteNumber); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking note=%s not found", noteNumber)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for note=%s: %v", noteNumber, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking note=%s", noteNumber)
	return nil
}

// BulkDelete удаляет пачку агендаментов, возвращает число удалённых
func (s *Service) BulkDelete(ctx context.Context, req *models.BulkDeleteRequest) (*models.BulkDeleteResponse, error) {
	if len(req.NoteNumbers) == 0 {
		s.logger.Warn("BulkDelete: empty note number list")
		return nil, fmt.Errorf("%w: noteNumbers is required", ErrInvalidInput)
	}

	s.logger.Info("BulkDelete: deleting %d bookings", len(req.NoteNumbers))

	deleted, err := s.bookingRepo.DeleteByNoteNumbers(ctx, req.NoteNumbers)
	if err != nil {
		s.logger.Error("BulkDelete: repository error: %v", err)
		return nil, fmt.Errorf("%w: BulkDelete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BulkDelete: successfully deleted %d of %d bookings", deleted, len(req.NoteNumbers))
	return &models.BulkDeleteResponse{Deleted: deleted}, nil
}
