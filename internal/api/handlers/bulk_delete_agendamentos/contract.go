package bulk_delete_agendamentos

import (
	"context"

	"github.com/m04kA/SMC-AgendamentoService/internal/service/agendamentos/models"
)

type AgendamentoService interface {
	BulkDelete(ctx context.Context, req *models.BulkDeleteRequest) (*models.BulkDeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
