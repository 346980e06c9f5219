package get_receipt

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/payments"
)

const (
	msgInvalidPaymentID = "некорректный ID платежа"
	msgMissingIdentity  = "отсутствует пользователь"
	msgNotFound         = "платеж не найден"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/{paymentId}/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID, err := handlers.PathInt64(r, "paymentId")
	if err != nil {
		h.logger.Warn("GET /payments/{id}/receipt - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	caller, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	pdf, err := h.service.Receipt(r.Context(), paymentID, caller)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("GET /payments/{id}/receipt - Payment not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("GET /payments/{id}/receipt - Access denied: payment_id=%d, user=%s", paymentID, caller.Email)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /payments/{id}/receipt - Failed to render receipt: payment_id=%d, error=%v", paymentID, err)
			handlers.RespondDomainError(w, r, err)
		}
		return
	}

	h.logger.Info("GET /payments/{id}/receipt - Receipt sent: payment_id=%d, user=%s", paymentID, caller.Email)
	handlers.RespondFile(w, "application/pdf", fmt.Sprintf("receipt-%d.pdf", paymentID), pdf)
}
