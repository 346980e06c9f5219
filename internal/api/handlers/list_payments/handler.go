package list_payments

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/payments/models"
)

const (
	msgMissingIdentity = "отсутствует пользователь"
	msgInvalidLimit    = "некорректный limit"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments
// Query params: email (только для администратора), limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	query := r.URL.Query()
	req := &models.ListPaymentsRequest{}
	if email := query.Get("email"); email != "" {
		req.Email = &email
	}
	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			h.logger.Warn("GET /payments - Invalid limit: %q", limit)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = n
	}

	result, err := h.service.List(r.Context(), req, caller)
	if err != nil {
		h.logger.Error("GET /payments - Failed to list payments: user=%s, error=%v", caller.Email, err)
		handlers.RespondDomainError(w, r, err)
		return
	}

	h.logger.Info("GET /payments - Payments retrieved: user=%s, count=%d", caller.Email, len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
