package finalize_payment

import (
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
	paymentModels "github.com/m04kA/SMC-ClubBookingService/internal/service/payments/models"
	finalizePayment "github.com/m04kA/SMC-ClubBookingService/internal/usecase/finalize_payment"
)

// FinalizePaymentRequest HTTP request model. Поля checkout не нужны при нулевой сумме
type FinalizePaymentRequest struct {
	CouponCode    string  `json:"couponCode,omitempty"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId,omitempty"`
	OrderID       string  `json:"orderId,omitempty"`
	Signature     string  `json:"signature,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	CardLastFour  string  `json:"cardLastFour,omitempty"`
}

// FinalizePaymentResponse HTTP response model
type FinalizePaymentResponse struct {
	Booking *bookingModels.BookingResponse `json:"booking"`
	Payment *paymentModels.PaymentResponse `json:"payment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FinalizePaymentRequest) ToUseCaseRequest(bookingID int64, requester domain.Identity) *finalizePayment.Request {
	return &finalizePayment.Request{
		BookingID:     bookingID,
		Requester:     requester,
		CouponCode:    r.CouponCode,
		Amount:        r.Amount,
		TransactionID: r.TransactionID,
		OrderID:       r.OrderID,
		Signature:     r.Signature,
		PaymentMethod: r.PaymentMethod,
		CardLastFour:  r.CardLastFour,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *finalizePayment.Response) *FinalizePaymentResponse {
	return &FinalizePaymentResponse{
		Booking: bookingModels.FromDomainBooking(resp.Booking),
		Payment: paymentModels.FromDomainPayment(resp.Payment),
	}
}
