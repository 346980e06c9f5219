package domain

import "time"

// PaymentRecordStatus статус записи о платеже
type PaymentRecordStatus string

const (
	PaymentRecordCompleted PaymentRecordStatus = "completed"
)

// FreeTransactionPrefix префикс идентификатора для бесплатных оплат (100% скидка).
// Такие оплаты не проходят через платежную систему
const FreeTransactionPrefix = "free-"

// Payment запись об оплате бронирования
type Payment struct {
	ID             int64
	BookingID      int64
	UserEmail      string
	Amount         float64
	OriginalAmount float64
	Discount       float64
	CouponUsed     *string
	PaymentMethod  string
	CardLastFour   *string
	TransactionID  string
	Status         PaymentRecordStatus
	PaymentDate    time.Time
	CreatedAt      time.Time
}

// PaymentsFilter фильтр истории платежей
type PaymentsFilter struct {
	UserEmail *string
	Limit     uint64
}
