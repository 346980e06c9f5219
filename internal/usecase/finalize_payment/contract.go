package finalize_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/razorpay"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	MarkPaid(ctx context.Context, booking *domain.Booking) error
}

// CouponCatalog источник каталога купонов
type CouponCatalog interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Coupon, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

// PaymentVerifier проверяет транзакцию в платежной системе
type PaymentVerifier interface {
	Verify(ctx context.Context, req razorpay.VerifyRequest) (*razorpay.Transaction, error)
}

// EventPublisher публикует события жизненного цикла бронирования
type EventPublisher interface {
	PublishBooking(ctx context.Context, eventType string, b *domain.Booking) error
}

// ReceiptMailer отправляет чек на почту
type ReceiptMailer interface {
	SendReceipt(ctx context.Context, r mailer.Receipt) error
}

// ReceiptRenderer формирует PDF-чек
type ReceiptRenderer interface {
	RenderReceipt(payment *domain.Payment, booking *domain.Booking) ([]byte, error)
}

// Metrics счетчики оплат
type Metrics interface {
	IncTransition(transition, result string)
	IncPayment(withCoupon bool)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
