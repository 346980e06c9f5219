package razorpay

import "context"

// TrustingVerifier принимает транзакцию со слов клиента без обращения к платежной системе.
// Используется, когда [payments] enabled = false (локальная разработка, оффлайн-оплата на стойке)
type TrustingVerifier struct {
	log Logger
}

// NewTrustingVerifier создает верификатор без проверки
func NewTrustingVerifier(log Logger) *TrustingVerifier {
	return &TrustingVerifier{log: log}
}

// Verify возвращает транзакцию на ожидаемую сумму
func (v *TrustingVerifier) Verify(_ context.Context, req VerifyRequest) (*Transaction, error) {
	if req.PaymentID == "" {
		return nil, ErrPaymentNotFound
	}

	v.log.Warn("Payments disabled: accepting transaction id=%s without verification", req.PaymentID)
	return &Transaction{
		ID:          req.PaymentID,
		OrderID:     req.OrderID,
		AmountMinor: req.ExpectedMinor,
		Status:      StatusCaptured,
		Method:      req.ClaimedMethod,
		CardLast4:   req.ClaimedLast4,
	}, nil
}

// CreateOrder возвращает локальный заказ без обращения к платежной системе
func (v *TrustingVerifier) CreateOrder(_ context.Context, amountMinor int64, receipt string) (*Order, error) {
	return &Order{ID: "offline_" + receipt, AmountMinor: amountMinor, Receipt: receipt}, nil
}

// KeyID пустой: checkout на клиенте не используется
func (v *TrustingVerifier) KeyID() string {
	return ""
}
