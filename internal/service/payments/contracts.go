package payments

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context, filter domain.PaymentsFilter) ([]*domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
