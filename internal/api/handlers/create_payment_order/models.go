package create_payment_order

import (
	createPaymentOrder "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_payment_order"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	CouponCode string `json:"couponCode,omitempty"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	BookingID   int64   `json:"bookingId"`
	OrderID     string  `json:"orderId,omitempty"`
	KeyID       string  `json:"keyId,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	AmountMinor int64   `json:"amountMinor"`
	Amount      float64 `json:"amount"`
	BasePrice   float64 `json:"basePrice"`
	Discount    float64 `json:"discount"`
	CouponCode  *string `json:"couponCode,omitempty"`
	Free        bool    `json:"free"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPaymentOrder.Response) *OrderResponse {
	return &OrderResponse{
		BookingID:   resp.BookingID,
		OrderID:     resp.OrderID,
		KeyID:       resp.KeyID,
		Currency:    resp.Currency,
		AmountMinor: resp.AmountMinor,
		Amount:      resp.Amount,
		BasePrice:   resp.BasePrice,
		Discount:    resp.Discount,
		CouponCode:  resp.CouponCode,
		Free:        resp.Free,
	}
}
