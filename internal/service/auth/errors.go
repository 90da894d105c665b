package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
