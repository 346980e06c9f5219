package finalize_payment

import "github.com/m04kA/SMC-ClubBookingService/internal/domain"

// Request модель запроса на оплату бронирования
type Request struct {
	BookingID int64 `validate:"gt=0"`
	Requester domain.Identity

	CouponCode string
	// Amount сумма, которую клиент собирается списать. Должна совпасть с рассчитанной
	Amount float64 `validate:"gte=0"`

	// Данные checkout платежной системы. Не нужны при нулевой сумме
	TransactionID string
	OrderID       string
	Signature     string
	PaymentMethod string
	CardLastFour  string `validate:"omitempty,len=4,numeric"`
}

// Response результат оплаты
type Response struct {
	Booking *domain.Booking
	Payment *domain.Payment
}
