package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// Broker транспорт сообщений (pkg/mq.Publisher)
type Broker interface {
	PublishJSON(ctx context.Context, key, messageID string, v any) error
}

// Publisher публикует события бронирований
type Publisher struct {
	broker Broker
	now    func() time.Time
}

// NewPublisher создает издателя событий поверх брокера
func NewPublisher(broker Broker) *Publisher {
	return &Publisher{broker: broker, now: time.Now}
}

// PublishBooking публикует событие типа eventType по текущему состоянию бронирования
func (p *Publisher) PublishBooking(ctx context.Context, eventType string, b *domain.Booking) error {
	event := BookingEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BookingID:  b.ID,
		UserEmail:  b.UserEmail,
		CourtID:    b.CourtID,
		Date:       b.Date.Format(domain.DateFormat),
		Slots:      b.Slots,
		Status:     string(b.Status),
		Amount:     b.PaidAmount,
		CouponUsed: b.CouponUsed,
		OccurredAt: p.now().UTC(),
	}

	if err := p.broker.PublishJSON(ctx, eventType, event.EventID, event); err != nil {
		return fmt.Errorf("events: publish %s for booking id=%d: %w", eventType, b.ID, err)
	}
	return nil
}

// Noop издатель для конфигурации без брокера
type Noop struct{}

// PublishBooking ничего не делает
func (Noop) PublishBooking(context.Context, string, *domain.Booking) error {
	return nil
}
