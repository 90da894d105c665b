package agendamentos

import "errors"

var (
	// ErrBookingNotFound возвращается, когда агендаменто не найден
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCompleted возвращается при повторном завершении агендаменто
	ErrAlreadyCompleted = errors.New("booking already completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
