package razorpay

// Статусы платежа в Razorpay, при которых деньги списаны или зарезервированы
const (
	StatusCaptured   = "captured"
	StatusAuthorized = "authorized"
)

// VerifyRequest данные checkout, присланные клиентом после оплаты
type VerifyRequest struct {
	PaymentID     string
	OrderID       string // Пустой, если оплата шла без заказа
	Signature     string
	ExpectedMinor int64 // Ожидаемая сумма в пайсах

	// Заявленные клиентом способ оплаты и последние цифры карты. Только для отображения
	ClaimedMethod string
	ClaimedLast4  string
}

// Transaction подтвержденный платеж
type Transaction struct {
	ID          string
	OrderID     string
	AmountMinor int64
	Currency    string
	Status      string
	Method      string
	CardNetwork string
	CardLast4   string
}

// PaymentMethod название способа оплаты для записи о платеже: сеть карты или метод
func (t *Transaction) PaymentMethod() string {
	if t.CardNetwork != "" {
		return t.CardNetwork
	}
	return t.Method
}

// Order заказ на оплату, созданный до checkout
type Order struct {
	ID          string
	AmountMinor int64
	Currency    string
	Receipt     string
}
