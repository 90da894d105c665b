package get_agendamento

import (
	"context"

	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos/models"
)

type AgendamentoService interface {
	GetByNote(ctx context.Context, noteNumber string) (*models.BookingDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
