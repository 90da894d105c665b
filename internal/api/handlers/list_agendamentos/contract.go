package list_agendamentos

import (
	"context"

	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos/models"
)

type AgendamentoService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
