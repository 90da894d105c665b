package reschedule_agendamento

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

// BookingRepository интерфейс репозитория агендаментов
type BookingRepository interface {
	GetByNoteNumber(ctx context.Context, noteNumber string) (*domain.Booking, error)
	CountSlot(ctx context.Context, date time.Time, period domain.Period, locality string) (int, error)
	Reschedule(ctx context.Context, noteNumber string, date time.Time, period domain.Period) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
