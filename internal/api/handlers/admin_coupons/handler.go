package admin_coupons

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons/models"
)

const (
	msgInvalidCouponID    = "некорректный ID купона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует пользователь"
	msgNotFound           = "купон не найден"
	msgForbidden          = "управлять купонами может только администратор"
	msgDuplicateCode      = "активный купон с таким кодом уже существует"
)

// Handler управление каталогом купонов (администратор)
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

// List GET /api/v1/admin/coupons
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), actor)
	if err != nil {
		h.respondError(w, r, "GET /admin/coupons", 0, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/admin/coupons
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req models.CouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coupon, err := h.service.Create(r.Context(), &req, actor)
	if err != nil {
		h.respondError(w, r, "POST /admin/coupons", 0, err)
		return
	}

	h.logger.Info("POST /admin/coupons - Coupon created: coupon_id=%d, code=%s, by=%s", coupon.ID, coupon.Code, actor.Email)
	handlers.RespondJSON(w, http.StatusCreated, coupon)
}

// Update PUT /api/v1/admin/coupons/{couponId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	couponID, actor, ok := h.target(w, r, "PUT /admin/coupons/{id}")
	if !ok {
		return
	}

	var req models.CouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/coupons/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coupon, err := h.service.Update(r.Context(), couponID, &req, actor)
	if err != nil {
		h.respondError(w, r, "PUT /admin/coupons/{id}", couponID, err)
		return
	}

	h.logger.Info("PUT /admin/coupons/{id} - Coupon updated: coupon_id=%d, by=%s", couponID, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, coupon)
}

// Deactivate PATCH /api/v1/admin/coupons/{couponId}/deactivate
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	couponID, actor, ok := h.target(w, r, "PATCH /admin/coupons/{id}/deactivate")
	if !ok {
		return
	}

	if err := h.service.Deactivate(r.Context(), couponID, actor); err != nil {
		h.respondError(w, r, "PATCH /admin/coupons/{id}/deactivate", couponID, err)
		return
	}

	h.logger.Info("PATCH /admin/coupons/{id}/deactivate - Coupon deactivated: coupon_id=%d, by=%s", couponID, actor.Email)
	w.WriteHeader(http.StatusNoContent)
}

// Delete DELETE /api/v1/admin/coupons/{couponId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	couponID, actor, ok := h.target(w, r, "DELETE /admin/coupons/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), couponID, actor); err != nil {
		h.respondError(w, r, "DELETE /admin/coupons/{id}", couponID, err)
		return
	}

	h.logger.Info("DELETE /admin/coupons/{id} - Coupon deleted: coupon_id=%d, by=%s", couponID, actor.Email)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	actor, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
	}
	return actor, ok
}

func (h *Handler) target(w http.ResponseWriter, r *http.Request, route string) (int64, domain.Identity, bool) {
	couponID, err := handlers.PathInt64(r, "couponId")
	if err != nil {
		h.logger.Warn("%s - Invalid coupon ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidCouponID)
		return 0, domain.Identity{}, false
	}

	actor, ok := h.actor(w, r)
	return couponID, actor, ok
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, route string, couponID int64, err error) {
	switch {
	case errors.Is(err, coupons.ErrCouponNotFound):
		h.logger.Warn("%s - Coupon not found: coupon_id=%d", route, couponID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, coupons.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, coupons.ErrDuplicateCode):
		h.logger.Warn("%s - Duplicate code: %v", route, err)
		handlers.RespondConflict(w, msgDuplicateCode)

	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondDomainError(w, r, err)

	default:
		h.logger.Error("%s - Failed: coupon_id=%d, error=%v", route, couponID, err)
		handlers.RespondDomainError(w, r, err)
	}
}
