package create_payment_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	createPaymentOrder "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_payment_order"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует пользователь"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "оплатить бронирование может только его автор"
	msgInvalidCoupon      = "купон недействителен или истек"
)

type Handler struct {
	useCase CreatePaymentOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment/order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment/order - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	requester, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req CreateOrderRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /bookings/{id}/payment/order - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &createPaymentOrder.Request{
		BookingID:  bookingID,
		Requester:  requester,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, createPaymentOrder.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment/order - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createPaymentOrder.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/payment/order - Access denied: booking_id=%d, user=%s", bookingID, requester.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createPaymentOrder.ErrInvalidCoupon):
			h.logger.Warn("POST /bookings/{id}/payment/order - Invalid coupon: booking_id=%d, coupon=%q", bookingID, req.CouponCode)
			handlers.RespondBadRequest(w, msgInvalidCoupon)

		case errors.Is(err, createPaymentOrder.ErrInternal):
			h.logger.Error("POST /bookings/{id}/payment/order - Failed to create order: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDomainError(w, r, err)

		default:
			h.logger.Warn("POST /bookings/{id}/payment/order - Rejected: booking_id=%d: %v", bookingID, err)
			handlers.RespondDomainError(w, r, err)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payment/order - Order prepared: booking_id=%d, order_id=%s, amount=%.2f",
		bookingID, result.OrderID, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
