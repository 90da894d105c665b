package create_agendamento

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_agendamento: invalid input data")

	// ErrInvalidNoteNumber возвращается при номере нотификации не по формату
	ErrInvalidNoteNumber = errors.New("create_agendamento: invalid note number format")

	// ErrInvalidPeriod возвращается при неизвестном периоде
	ErrInvalidPeriod = errors.New("create_agendamento: invalid period")

	// ErrInvalidLocality возвращается при неизвестной локалидаде
	ErrInvalidLocality = errors.New("create_agendamento: invalid locality")

	// ErrNonBusinessDay возвращается, когда дата выпадает на выходной
	ErrNonBusinessDay = errors.New("create_agendamento: date is not a business day")

	// ErrDateTooFarInFuture возвращается, когда дата за горизонтом бронирования
	ErrDateTooFarInFuture = errors.New("create_agendamento: date is too far in the future")

	// ErrInsufficientLeadTime возвращается, когда дата слишком близко к сегодняшней
	ErrInsufficientLeadTime = errors.New("create_agendamento: insufficient lead time")

	// ErrSlotFull возвращается, когда слот уже заполнен
	ErrSlotFull = errors.New("create_agendamento: slot is full")

	// ErrDuplicateNoteNumber возвращается, когда номер нотификации уже занят
	ErrDuplicateNoteNumber = errors.New("create_agendamento: note number already exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_agendamento: internal error")
)
