package coupons

import (
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

// Handler купоны для игроков: список действующих и предварительный расчет
type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/coupons
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUsable(r.Context())
	if err != nil {
		h.logger.Error("GET /coupons - Failed to list coupons: %v", err)
		handlers.RespondDomainError(w, r, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Preview POST /api/v1/coupons/preview
// Неизвестный купон не ошибка: ответ valid=false
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Preview(r.Context(), &req)
	if err != nil {
		if handlers.StatusFor(err) == http.StatusBadRequest {
			h.logger.Warn("POST /coupons/preview - Validation failed: %v", err)
		} else {
			h.logger.Error("POST /coupons/preview - Failed to preview coupon %q: %v", req.Code, err)
		}
		handlers.RespondDomainError(w, r, err)
		return
	}

	h.logger.Info("POST /coupons/preview - code=%q, valid=%t, final=%.2f", req.Code, result.Valid, result.FinalAmount)
	handlers.RespondJSON(w, http.StatusOK, result)
}

