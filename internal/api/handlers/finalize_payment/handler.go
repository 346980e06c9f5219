package finalize_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	finalizePayment "github.com/m04kA/SMC-ClubBookingService/internal/usecase/finalize_payment"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует пользователь"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "оплатить бронирование может только его автор"
	msgInvalidCoupon      = "купон недействителен или истек"
	msgAmountMismatch     = "сумма к оплате не совпадает с рассчитанной"
	msgAlreadyPaid        = "бронирование уже оплачено или не одобрено"
	msgDeclined           = "платеж не подтвержден платежной системой"
)

type Handler struct {
	useCase FinalizePaymentUseCase
	logger  Logger
}

func NewHandler(useCase FinalizePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	requester, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req FinalizePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, requester))
	if err != nil {
		switch {
		case errors.Is(err, finalizePayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, finalizePayment.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/payment - Access denied: booking_id=%d, user=%s", bookingID, requester.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, finalizePayment.ErrInvalidCoupon):
			h.logger.Warn("POST /bookings/{id}/payment - Invalid coupon: booking_id=%d, coupon=%q", bookingID, req.CouponCode)
			handlers.RespondBadRequest(w, msgInvalidCoupon)

		case errors.Is(err, finalizePayment.ErrAmountMismatch):
			h.logger.Warn("POST /bookings/{id}/payment - Amount mismatch: booking_id=%d, amount=%.2f", bookingID, req.Amount)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAmountMismatch)

		case errors.Is(err, finalizePayment.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings/{id}/payment - Payment declined: booking_id=%d: %v", bookingID, err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgDeclined)

		case handlers.StatusFor(err) == http.StatusConflict:
			h.logger.Warn("POST /bookings/{id}/payment - Cannot pay: booking_id=%d: %v", bookingID, err)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case handlers.StatusFor(err) == http.StatusBadRequest:
			h.logger.Warn("POST /bookings/{id}/payment - Validation failed: booking_id=%d: %v", bookingID, err)
			handlers.RespondDomainError(w, r, err)

		default:
			h.logger.Error("POST /bookings/{id}/payment - Failed to finalize payment: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDomainError(w, r, err)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payment - Booking paid: booking_id=%d, payment_id=%d, amount=%.2f",
		bookingID, result.Payment.ID, result.Payment.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
