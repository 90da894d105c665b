package create_agendamento

import (
	"context"

	createAgendamento "github.com/m04kA/SMC-AgendamentoService/internal/usecase/create_agendamento"
)

type CreateAgendamentoUseCase interface {
	Execute(ctx context.Context, req *createAgendamento.Request) (*createAgendamento.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
