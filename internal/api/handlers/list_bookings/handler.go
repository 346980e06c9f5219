package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
)

const (
	msgMissingIdentity = "отсутствует пользователь"
	msgInvalidLimit    = "некорректный limit"
	msgInvalidStatus   = "некорректный статус бронирования"
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

// Handle GET /api/v1/bookings
// Query params: status, email (только для администратора), limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if status := query.Get("status"); status != "" {
		if _, err := domain.ParseBookingStatus(status); err != nil {
			h.logger.Warn("GET /bookings - Invalid status: %q", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		req.Status = &status
	}
	if email := query.Get("email"); email != "" {
		req.Email = &email
	}
	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid limit: %q", limit)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = n
	}

	result, err := h.service.List(r.Context(), req, caller)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: user=%s, error=%v", caller.Email, err)
		handlers.RespondDomainError(w, r, err)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user=%s, count=%d",
		caller.Email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
