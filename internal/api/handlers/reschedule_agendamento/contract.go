package reschedule_agendamento

import (
	"context"

	rescheduleAgendamento "github.com/m04kA/SMC-AgendamentoService/internal/usecase/reschedule_agendamento"
)

type RescheduleAgendamentoUseCase interface {
	Execute(ctx context.Context, req *rescheduleAgendamento.Request) (*rescheduleAgendamento.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
