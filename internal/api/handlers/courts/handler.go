package courts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	courtsService "github.com/m04kA/SMC-ClubBookingService/internal/service/courts"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/courts/models"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgCourtNotFound  = "корт не найден"
)

// Handler публичный каталог кортов
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

// List GET /api/v1/courts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courts, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondDomainError(w, r, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainCourtList(courts))
}

// Get GET /api/v1/courts/{courtId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("GET /courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	court, err := h.service.Get(r.Context(), courtID)
	if err != nil {
		if errors.Is(err, courtsService.ErrCourtNotFound) {
			h.logger.Warn("GET /courts/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)
			return
		}
		h.logger.Error("GET /courts/{id} - Failed to get court: court_id=%d, error=%v", courtID, err)
		handlers.RespondDomainError(w, r, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainCourt(court))
}
