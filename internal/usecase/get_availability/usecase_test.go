package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) OccupiedSlots(ctx context.Context, locality string, fromDate time.Time) ([]domain.SlotOccupancy, error) {
	args := m.Called(ctx, locality, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SlotOccupancy), args.Error(1)
}

// stubTimeProvider фиксирует "сегодня"
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
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = stubTimeProvider{now: today}
	return uc
}

func TestExecute_AggregatesFullSlots(t *testing.T) {
	repo := new(MockBookingRepository)
	today := date(2025, time.November, 5)
	uc := newTestUseCase(repo, today)

	nov10 := date(2025, time.November, 10)
	nov11 := date(2025, time.November, 11)
	nov12 := date(2025, time.November, 12)

	repo.On("OccupiedSlots", mock.Anything, "lisboa", today).Return([]domain.SlotOccupancy{
		// 10 ноября: оба периода заполнены
		{Date: nov10, Period: domain.PeriodManha, Count: 2},
		{Date: nov10, Period: domain.PeriodTarde, Count: 2},
		// 11 ноября: заполнен только утренний период
		{Date: nov11, Period: domain.PeriodManha, Count: 2},
		{Date: nov11, Period: domain.PeriodTarde, Count: 1},
		// 12 ноября: частичная занятость, в ответ не попадает
		{Date: nov12, Period: domain.PeriodManha, Count: 1},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Locality: "lisboa"})

	require.NoError(t, err)
	assert.Equal(t, "lisboa", resp.Locality)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, nov10, resp.Days[0].Date)
	assert.ElementsMatch(t, []domain.Period{domain.PeriodManha, domain.PeriodTarde}, resp.Days[0].FullPeriods)
	assert.True(t, resp.Days[0].FullyBooked)

	assert.Equal(t, nov11, resp.Days[1].Date)
	assert.Equal(t, []domain.Period{domain.PeriodManha}, resp.Days[1].FullPeriods)
	assert.False(t, resp.Days[1].FullyBooked)
}

func TestExecute_NoFullSlots(t *testing.T) {
	repo := new(MockBookingRepository)
	today := date(2025, time.November, 5)
	uc := newTestUseCase(repo, today)

	repo.On("OccupiedSlots", mock.Anything, "porto", today).Return([]domain.SlotOccupancy{
		{Date: date(2025, time.November, 10), Period: domain.PeriodManha, Count: 1},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Locality: "porto"})

	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_EmptyLocality(t *testing.T) {
	repo := new(MockBookingRepository)
	uc := newTestUseCase(repo, date(2025, time.November, 5))

	resp, err := uc.Execute(context.Background(), &Request{Locality: "  "})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "OccupiedSlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := new(MockBookingRepository)
	today := date(2025, time.November, 5)
	uc := newTestUseCase(repo, today)

	repo.On("OccupiedSlots", mock.Anything, "lisboa", today).
		Return(nil, errors.New("connection refused"))

	resp, err := uc.Execute(context.Background(), &Request{Locality: "lisboa"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestBuildAvailability_SortsByDate(t *testing.T) {
	nov10 := date(2025, time.November, 10)
	nov17 := date(2025, time.November, 17)
	nov12 := date(2025, time.November, 12)

	days := buildAvailability([]domain.SlotOccupancy{
		{Date: nov17, Period: domain.PeriodManha, Count: 2},
		{Date: nov10, Period: domain.PeriodTarde, Count: 2},
		{Date: nov12, Period: domain.PeriodManha, Count: 3},
	})

	require.Len(t, days, 3)
	assert.Equal(t, nov10, days[0].Date)
	assert.Equal(t, nov12, days[1].Date)
	assert.Equal(t, nov17, days[2].Date)
}
