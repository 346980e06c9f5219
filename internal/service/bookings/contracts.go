package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	TransitionStatus(ctx context.Context, id int64, from, to domain.BookingStatus, approvedAt *time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события жизненного цикла бронирования
type EventPublisher interface {
	PublishBooking(ctx context.Context, eventType string, b *domain.Booking) error
}

// Metrics счетчики переходов статусов
type Metrics interface {
	IncTransition(transition, result string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
