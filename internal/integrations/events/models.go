package events

import "time"

// Типы событий, они же ключи маршрутизации в exchange
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingApproved  = "booking.approved"
	TypeBookingRejected  = "booking.rejected"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingPaid      = "booking.paid"
)

// BookingEvent событие жизненного цикла бронирования
type BookingEvent struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	UserEmail  string    `json:"userEmail"`
	CourtID    int64     `json:"courtId"`
	Date       string    `json:"date"`
	Slots      []string  `json:"slots"`
	Status     string    `json:"status"`
	Amount     *float64  `json:"amount,omitempty"`
	CouponUsed *string   `json:"couponUsed,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
