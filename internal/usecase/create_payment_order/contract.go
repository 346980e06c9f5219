package create_payment_order

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/razorpay"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// CouponCatalog каталог купонов для расчета суммы
type CouponCatalog interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Coupon, error)
}

// OrderCreator создает заказ в платежной системе
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*razorpay.Order, error)
	KeyID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
