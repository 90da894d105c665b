package reschedule_agendamento

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_agendamento: invalid input data")

	// ErrInvalidPeriod возвращается при неизвестном периоде
	ErrInvalidPeriod = errors.New("reschedule_agendamento: invalid period")

	// ErrBookingNotFound возвращается, когда агендаменто не найден
	ErrBookingNotFound = errors.New("reschedule_agendamento: booking not found")

	// ErrAlreadyCompleted возвращается при попытке перенести завершённый агендаменто
	ErrAlreadyCompleted = errors.New("reschedule_agendamento: booking already completed")

	// ErrRescheduleLimitReached возвращается, когда единственный перенос уже использован
	ErrRescheduleLimitReached = errors.New("reschedule_agendamento: reschedule limit reached")

	// ErrNonBusinessDay возвращается, когда новая дата выпадает на выходной
	ErrNonBusinessDay = errors.New("reschedule_agendamento: date is not a business day")

	// ErrDateTooFarInFuture возвращается, когда новая дата за горизонтом бронирования
	ErrDateTooFarInFuture = errors.New("reschedule_agendamento: date is too far in the future")

	// ErrInsufficientLeadTime возвращается, когда новая дата слишком близко к сегодняшней
	ErrInsufficientLeadTime = errors.New("reschedule_agendamento: insufficient lead time")

	// ErrSlotFull возвращается, когда целевой слот уже заполнен
	ErrSlotFull = errors.New("reschedule_agendamento: slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_agendamento: internal error")
)
