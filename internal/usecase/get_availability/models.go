package get_availability

import "github.com/m04kA/SMC-AgendamentoService/internal/domain"

// Request модель запроса занятости слотов
type Request struct {
	Locality string // Код локалидаде
}

// Response занятость предстоящих дат локалидаде.
// Дата попадает в ответ, только если хотя бы один её период заполнен.
type Response struct {
	Locality string
	Days     []domain.DayAvailability
}
