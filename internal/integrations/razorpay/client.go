package razorpay

import (
	"context"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"
)

// paymentsAPI часть razorpay.Client, работающая с платежами
type paymentsAPI interface {
	Fetch(paymentID string, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// ordersAPI часть razorpay.Client, работающая с заказами
type ordersAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Client проверяет платежи в Razorpay
type Client struct {
	payments        paymentsAPI
	orders          ordersAPI
	keyID           string
	keySecret       string
	currency        string
	verifySignature bool
	log             Logger
}

// NewClient создает клиента Razorpay
func NewClient(keyID, keySecret, currency string, verifySignature bool, log Logger) *Client {
	rz := razorpay.NewClient(keyID, keySecret)
	return newClient(rz.Payment, rz.Order, keyID, keySecret, currency, verifySignature, log)
}

func newClient(payments paymentsAPI, orders ordersAPI, keyID, keySecret, currency string, verifySignature bool, log Logger) *Client {
	return &Client{
		payments:        payments,
		orders:          orders,
		keyID:           keyID,
		keySecret:       keySecret,
		currency:        strings.ToUpper(currency),
		verifySignature: verifySignature,
		log:             log,
	}
}

// KeyID публичный ключ магазина, нужен клиенту для checkout
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder создает заказ на сумму amountMinor
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        c.currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	resp, err := call(ctx, func() (map[string]interface{}, error) {
		return c.orders.Create(data, nil)
	})
	if err != nil {
		c.log.Error("Razorpay: failed to create order receipt=%s: %v", receipt, err)
		return nil, err
	}

	id, _ := resp["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("%w: order id is missing", ErrInvalidResponse)
	}

	c.log.Info("Razorpay: created order id=%s receipt=%s amount=%d", id, receipt, amountMinor)
	return &Order{ID: id, AmountMinor: amountMinor, Currency: c.currency, Receipt: receipt}, nil
}

// Verify проверяет, что платеж существует, списан и на ожидаемую сумму
func (c *Client) Verify(ctx context.Context, req VerifyRequest) (*Transaction, error) {
	if req.PaymentID == "" {
		return nil, ErrPaymentNotFound
	}

	if c.verifySignature || req.OrderID != "" {
		if !VerifySignature(req.OrderID, req.PaymentID, req.Signature, c.keySecret) {
			c.log.Warn("Razorpay: invalid signature for payment id=%s", req.PaymentID)
			return nil, ErrInvalidSignature
		}
	}

	resp, err := call(ctx, func() (map[string]interface{}, error) {
		return c.payments.Fetch(req.PaymentID, map[string]interface{}{"expand[]": "card"}, nil)
	})
	if err != nil {
		c.log.Error("Razorpay: failed to fetch payment id=%s: %v", req.PaymentID, err)
		return nil, err
	}

	tx, err := parseTransaction(resp)
	if err != nil {
		return nil, err
	}

	if tx.Status != StatusCaptured && tx.Status != StatusAuthorized {
		c.log.Warn("Razorpay: payment id=%s has status=%s", tx.ID, tx.Status)
		return nil, fmt.Errorf("%w: status %s", ErrPaymentRejected, tx.Status)
	}
	if req.OrderID != "" && tx.OrderID != req.OrderID {
		return nil, fmt.Errorf("%w: payment belongs to order %s", ErrInvalidSignature, tx.OrderID)
	}
	if c.currency != "" && !strings.EqualFold(tx.Currency, c.currency) {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrCurrencyMismatch, tx.Currency, c.currency)
	}
	if tx.AmountMinor != req.ExpectedMinor {
		c.log.Warn("Razorpay: payment id=%s amount=%d, expected=%d", tx.ID, tx.AmountMinor, req.ExpectedMinor)
		return nil, fmt.Errorf("%w: got %d, want %d", ErrAmountMismatch, tx.AmountMinor, req.ExpectedMinor)
	}

	c.log.Info("Razorpay: verified payment id=%s amount=%d method=%s", tx.ID, tx.AmountMinor, tx.PaymentMethod())
	return tx, nil
}

// call выполняет блокирующий вызов SDK с учетом дедлайна контекста
func call(ctx context.Context, fn func() (map[string]interface{}, error)) (map[string]interface{}, error) {
	type result struct {
		resp map[string]interface{}
		err  error
	}

	done := make(chan result, 1)
	go func() {
		resp, err := fn()
		done <- result{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	case r := <-done:
		if r.err != nil {
			if strings.Contains(strings.ToLower(r.err.Error()), "does not exist") {
				return nil, fmt.Errorf("%w: %v", ErrPaymentNotFound, r.err)
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, r.err)
		}
		return r.resp, nil
	}
}

func parseTransaction(resp map[string]interface{}) (*Transaction, error) {
	id, _ := resp["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("%w: payment id is missing", ErrInvalidResponse)
	}

	amount, ok := resp["amount"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: payment amount is missing", ErrInvalidResponse)
	}

	tx := &Transaction{ID: id, AmountMinor: int64(amount)}
	tx.OrderID, _ = resp["order_id"].(string)
	tx.Currency, _ = resp["currency"].(string)
	tx.Status, _ = resp["status"].(string)
	tx.Method, _ = resp["method"].(string)

	if card, ok := resp["card"].(map[string]interface{}); ok {
		tx.CardNetwork, _ = card["network"].(string)
		tx.CardLast4, _ = card["last4"].(string)
	}

	return tx, nil
}
