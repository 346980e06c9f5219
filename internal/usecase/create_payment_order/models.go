package create_payment_order

import "github.com/m04kA/SMC-ClubBookingService/internal/domain"

// Request модель запроса на создание заказа
type Request struct {
	BookingID  int64
	Requester  domain.Identity
	CouponCode string
}

// Response заказ и рассчитанная сумма. Для бесплатного бронирования заказ не создается
type Response struct {
	BookingID   int64
	OrderID     string
	KeyID       string
	Currency    string
	AmountMinor int64
	Amount      float64
	BasePrice   float64
	Discount    float64
	CouponCode  *string
	Free        bool
}
