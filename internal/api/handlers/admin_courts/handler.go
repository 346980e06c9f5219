package admin_courts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/courts"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/courts/models"
)

const (
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingIdentity    = "отсутствует пользователь"
	msgNotFound           = "корт не найден"
	msgForbidden          = "управлять кортами может только администратор"
	msgCourtInUse         = "на корт есть бронирования, удалить его нельзя"
)

// Handler управление каталогом кортов (администратор)
type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/courts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req models.CourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.Create(r.Context(), &req, actor)
	if err != nil {
		h.respondError(w, r, "POST /admin/courts", 0, err)
		return
	}

	h.logger.Info("POST /admin/courts - Court created: court_id=%d, by=%s", court.ID, actor.Email)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainCourt(court))
}

// Update PUT /api/v1/admin/courts/{courtId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	courtID, actor, ok := h.target(w, r, "PUT /admin/courts/{id}")
	if !ok {
		return
	}

	var req models.CourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/courts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.Update(r.Context(), courtID, &req, actor)
	if err != nil {
		h.respondError(w, r, "PUT /admin/courts/{id}", courtID, err)
		return
	}

	h.logger.Info("PUT /admin/courts/{id} - Court updated: court_id=%d, by=%s", courtID, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainCourt(court))
}

// Delete DELETE /api/v1/admin/courts/{courtId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	courtID, actor, ok := h.target(w, r, "DELETE /admin/courts/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), courtID, actor); err != nil {
		h.respondError(w, r, "DELETE /admin/courts/{id}", courtID, err)
		return
	}

	h.logger.Info("DELETE /admin/courts/{id} - Court deleted: court_id=%d, by=%s", courtID, actor.Email)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) target(w http.ResponseWriter, r *http.Request, route string) (int64, domain.Identity, bool) {
	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("%s - Invalid court ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return 0, domain.Identity{}, false
	}

	actor, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
	}
	return courtID, actor, ok
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, route string, courtID int64, err error) {
	switch {
	case errors.Is(err, courts.ErrCourtNotFound):
		h.logger.Warn("%s - Court not found: court_id=%d", route, courtID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, courts.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, courts.ErrCourtInUse):
		h.logger.Warn("%s - Court in use: court_id=%d", route, courtID)
		handlers.RespondConflict(w, msgCourtInUse)

	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondDomainError(w, r, err)

	default:
		h.logger.Error("%s - Failed: court_id=%d, error=%v", route, courtID, err)
		handlers.RespondDomainError(w, r, err)
	}
}
