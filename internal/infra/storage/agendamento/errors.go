package agendamento

import "errors"

var (
	// ErrBookingNotFound возвращается, когда агендаменто не найден
	ErrBookingNotFound = errors.New("agendamento.repository: booking not found")

	// ErrDuplicateNoteNumber возвращается при вставке с уже существующим номером нотификации
	ErrDuplicateNoteNumber = errors.New("agendamento.repository: note number already exists")

	// ErrNotReschedulable возвращается, когда условный UPDATE переноса не затронул строк
	ErrNotReschedulable = errors.New("agendamento.repository: booking is not reschedulable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("agendamento.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("agendamento.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("agendamento.repository: failed to scan row")
)
