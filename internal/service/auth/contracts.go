package auth

// TokenIssuer интерфейс выпуска токенов бэк-офиса
type TokenIssuer interface {
	GenerateToken(role string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
