package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует пользователь"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "только администратор может менять статус"
	msgSlotTaken          = "слот уже занят другим бронированием"
	msgStatusChanged      = "бронирование уже обработано"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), bookingID, &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%d, user=%s", bookingID, actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrSlotUnavailable):
			h.logger.Warn("PATCH /bookings/{id}/status - Slot taken: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, domain.ErrInvalidState):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid state: booking_id=%d: %v", bookingID, err)
			handlers.RespondConflict(w, msgStatusChanged)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PATCH /bookings/{id}/status - Validation failed: %v", err)
			handlers.RespondDomainError(w, r, err)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDomainError(w, r, err)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Booking status updated: booking_id=%d, status=%s, by=%s",
		bookingID, booking.Status, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
