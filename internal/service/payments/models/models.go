package models

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// ListPaymentsRequest запрос истории платежей
type ListPaymentsRequest struct {
	Email *string `json:"email,omitempty"` // Учитывается только для администратора
	Limit uint64  `json:"limit,omitempty"`
}

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID             int64     `json:"id"`
	BookingID      int64     `json:"bookingId"`
	UserEmail      string    `json:"userEmail"`
	Amount         float64   `json:"amount"`
	OriginalAmount float64   `json:"originalAmount"`
	Discount       float64   `json:"discount"`
	CouponUsed     *string   `json:"couponUsed,omitempty"`
	PaymentMethod  string    `json:"paymentMethod"`
	CardLastFour   *string   `json:"cardLastFour,omitempty"`
	TransactionID  string    `json:"transactionId"`
	Status         string    `json:"status"`
	PaymentDate    time.Time `json:"paymentDate"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:             p.ID,
		BookingID:      p.BookingID,
		UserEmail:      p.UserEmail,
		Amount:         p.Amount,
		OriginalAmount: p.OriginalAmount,
		Discount:       p.Discount,
		CouponUsed:     p.CouponUsed,
		PaymentMethod:  p.PaymentMethod,
		CardLastFour:   p.CardLastFour,
		TransactionID:  p.TransactionID,
		Status:         string(p.Status),
		PaymentDate:    p.PaymentDate,
	}
}

// FromDomainPaymentList конвертирует список domain моделей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{Payments: make([]PaymentResponse, 0, len(payments))}
	for _, p := range payments {
		if payment := FromDomainPayment(p); payment != nil {
			resp.Payments = append(resp.Payments, *payment)
		}
	}
	return resp
}
