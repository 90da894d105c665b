package agendamentos

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendamentoService/internal/domain"
)

// BookingRepository интерфейс репозитория агендаментов
type BookingRepository interface {
	GetByNoteNumber(ctx context.Context, noteNumber string) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Complete(ctx context.Context, noteNumber string) error
	Delete(ctx context.Context, noteNumber string) error
	DeleteByNoteNumbers(ctx context.Context, noteNumbers []string) (int64, error)
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
