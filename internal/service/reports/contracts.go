package reports

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// PaymentGetter получает платеж с проверкой доступа (service/payments)
type PaymentGetter interface {
	Get(ctx context.Context, id int64, caller domain.Identity) (*domain.Payment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
