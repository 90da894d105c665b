package delete_agendamento

import "context"

type AgendamentoService interface {
	Delete(ctx context.Context, noteNumber string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
