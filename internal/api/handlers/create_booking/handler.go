package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует пользователь"
	msgSlotNotAvailable   = "выбранный слот уже занят"
	msgCourtNotFound      = "корт не найден"
	msgPriceMismatch      = "цена изменилась, обновите страницу"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(requester))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot not available: user=%s, court_id=%d", requester.Email, req.CourtID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrPriceMismatch):
			h.logger.Warn("POST /bookings - Price mismatch: user=%s, court_id=%d", requester.Email, req.CourtID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceMismatch)

		case errors.Is(err, createBooking.ErrBookingContended):
			h.logger.Warn("POST /bookings - Concurrent booking, client should retry: user=%s, court_id=%d", requester.Email, req.CourtID)
			handlers.RespondDomainError(w, r, err)

		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("POST /bookings - Rejected: user=%s: %v", requester.Email, err)
			handlers.RespondDomainError(w, r, err)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, court_id=%d, error=%v",
				requester.Email, req.CourtID, err)
			handlers.RespondDomainError(w, r, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user=%s, court_id=%d",
		booking.ID, requester.Email, booking.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(booking))
}
