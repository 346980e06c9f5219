package middleware

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/pkg/auth"
)

// TokenParser проверяет токен провайдера идентификации
type TokenParser interface {
	ParseValidate(token string) (*auth.Claims, error)
}

// HTTPObserver собирает метрики HTTP запросов
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
