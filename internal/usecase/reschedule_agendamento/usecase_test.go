package reschedule_agendamento

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AgendamentoService/internal/infra/storage/agendamento"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByNoteNumber(ctx context.Context, noteNumber string) (*domain.Booking, error) {
	args := m.Called(ctx, noteNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountSlot(ctx context.Context, date time.Time, period domain.Period, locality string) (int, error) {
	args := m.Called(ctx, date, period, locality)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) Reschedule(ctx context.Context, noteNumber string, date time.Time, period domain.Period) error {
	args := m.Called(ctx, noteNumber, date, period)
	return args.Error(0)
}

// stubTxManager выполняет функцию без реальной транзакции
type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// stubTimeProvider фиксирует "сегодня" для детерминированных правил слота
type stubTimeProvider struct {
	now time.Time
}

func (s stubTimeProvider) Now() time.Time {
	return s.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *MockBookingRepository, today time.Time) *UseCase {
	uc := NewUseCase(repo, stubTxManager{}, 30, nopLogger{})
	uc.timeProvider = stubTimeProvider{now: today}
	return uc
}

func scheduledBooking() *domain.Booking {
	return &domain.Booking{
		ID:                 1,
		NoteNumber:         "70912345678",
		InstallationNumber: "INST-001",
		ResponsibleParty:   "Maria Silva",
		Locality:           "lisboa",
		OriginalDate:       date(2025, time.November, 10),
		OriginalPeriod:     domain.PeriodManha,
		CurrentDate:        date(2025, time.November, 10),
		CurrentPeriod:      domain.PeriodManha,
		Status:             domain.StatusScheduled,
		RescheduleCount:    0,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	today := date(2025, time.November, 5) // среда
	uc := newTestUseCase(repo, today)

	booking := scheduledBooking()
	newDate := date(2025, time.November, 12) // среда
	rescheduledAt := today.Add(10 * time.Hour)

	updated := *booking
	updated.CurrentDate = newDate
	updated.CurrentPeriod = domain.PeriodTarde
	updated.Status = domain.StatusRescheduled
	updated.RescheduleCount = 1
	updated.RescheduledAt = &rescheduledAt

	repo.On("GetByNoteNumber", mock.Anything, booking.NoteNumber).Return(booking, nil).Once()
	repo.On("CountSlot", mock.Anything, newDate, domain.PeriodTarde, booking.Locality).Return(1, nil)
	repo.On("Reschedule", mock.Anything, booking.NoteNumber, newDate, domain.PeriodTarde).Return(nil)
	repo.On("GetByNoteNumber", mock.Anything, booking.NoteNumber).Return(&updated, nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{
		NoteNumber: booking.NoteNumber,
		Date:       newDate,
		Period:     domain.PeriodTarde,
	})

	require.NoError(t, err)
	assert.Equal(t, newDate, resp.CurrentDate)
	assert.Equal(t, domain.PeriodTarde, resp.CurrentPeriod)
	assert.Equal(t, booking.OriginalDate, resp.OriginalDate)
	assert.Equal(t, domain.PeriodManha, resp.OriginalPeriod)
	assert.Equal(t, string(domain.StatusRescheduled), resp.Status)
	assert.Equal(t, 1, resp.RescheduleCount)
	require.NotNil(t, resp.RescheduledAt)
	repo.AssertExpectations(t)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	uc := newTestUseCase(repo, date(2025, time.November, 5))

	repo.On("GetByNoteNumber", mock.Anything, "70900000000").
		Return(nil, bookingRepo.ErrBookingNotFound)

	resp, err := uc.Execute(context.Background(), &Request{
		NoteNumber: "70900000000",
		Date:       date(2025, time.November, 12),
		Period:     domain.PeriodManha,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyCompleted(t *testing.T) {
	repo := new(MockBookingRepository)
	uc := newTestUseCase(repo, date(2025, time.November, 5))

	booking := scheduledBooking()
	booking.Status = domain.StatusCompleted
	// Завершённый статус перекрывает исчерпанный лимит переносов
	booking.RescheduleCount = 1

	repo.On("GetByNoteNumber", mock.Anything, booking.NoteNumber).Return(booking, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		NoteNumber: booking.NoteNumber,
		Date:       date(2025, time.November, 12),
		Period:     domain.PeriodManha,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	repo.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_RescheduleLimitReached(t *testing.T) {
	repo := new(MockBookingRepository)
	uc := newTestUseCase(repo, date(2025, time.November, 5))

	booking := scheduledBooking()
	booking.Status = domain.StatusRescheduled
	booking.RescheduleCount = 1

	repo.On("GetByNoteNumber", mock.Anything, booking.NoteNumber).Return(booking, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		NoteNumber: booking.NoteNumber,
		Date:       date(2025, time.November, 12),
		Period:     domain.PeriodManha,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrRescheduleLimitReached)
}

func TestExecute_TargetSlotFull(t *testing.T) {
	repo := new(MockBookingRepository)
	uc := newTestUseCase(repo, date(2025, time.November, 5))

	booking := scheduledBooking()
	newDate := date(2025, time.November, 12)

	repo.On("GetByNoteNumber", mock.Anything, booking.NoteNumber).Return(booking, nil)
	repo.On("CountSlot", mock.Anything, newDate, domain.PeriodManha, booking.Locality).
		Return(domain.SlotCapacity, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		NoteNumber: booking.NoteNumber,
		Date:       newDate,
		Period:     domain.PeriodManha,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotFull)
	repo.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_SlotRuleErrors(t *testing.T) {
	today := date(2025, time.November, 5) // среда

	tests := []struct {
		name    string
		reqDate time.Time
		wantErr error
	}{
		{
			name:    "weekend date",
			reqDate: date(2025, time.November, 9), // воскресенье
			wantErr: ErrNonBusinessDay,
		},
		{
			name:    "insufficient lead time",
			reqDate: date(2025, time.November, 6),
			wantErr: ErrInsufficientLeadTime,
		},
		{
			name:    "beyond booking horizon",
			reqDate: date(2025, time.December, 8),
			wantErr: ErrDateTooFarInFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			uc := newTestUseCase(repo, today)

			booking := scheduledBooking()

			repo.On("GetByNoteNumber", mock.Anything, booking.NoteNumber).Return(booking, nil)
			repo.On("CountSlot", mock.Anything, tt.reqDate, domain.PeriodManha, booking.Locality).Return(0, nil)

			resp, err := uc.Execute(context.Background(), &Request{
				NoteNumber: booking.NoteNumber,
				Date:       tt.reqDate,
				Period:     domain.PeriodManha,
			})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_ConditionalUpdateRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	uc := newTestUseCase(repo, date(2025, time.November, 5))

	booking := scheduledBooking()
	newDate := date(2025, time.November, 12)

	repo.On("GetByNoteNumber", mock.Anything, booking.NoteNumber).Return(booking, nil)
	repo.On("CountSlot", mock.Anything, newDate, domain.PeriodManha, booking.Locality).Return(0, nil)
	repo.On("Reschedule", mock.Anything, booking.NoteNumber, newDate, domain.PeriodManha).
		Return(bookingRepo.ErrNotReschedulable)

	resp, err := uc.Execute(context.Background(), &Request{
		NoteNumber: booking.NoteNumber,
		Date:       newDate,
		Period:     domain.PeriodManha,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrRescheduleLimitReached)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "missing note number",
			req: &Request{
				Date:   date(2025, time.November, 12),
				Period: domain.PeriodManha,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "zero date",
			req: &Request{
				NoteNumber: "70912345678",
				Period:     domain.PeriodManha,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown period",
			req: &Request{
				NoteNumber: "70912345678",
				Date:       date(2025, time.November, 12),
				Period:     "noite",
			},
			wantErr: ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			uc := newTestUseCase(repo, date(2025, time.November, 5))

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "GetByNoteNumber", mock.Anything, mock.Anything)
		})
	}
}
