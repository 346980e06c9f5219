package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	msgMissingIdentity = "отсутствует пользователь"
	msgForbidden       = "выгрузка доступна только администратору"
	msgInvalidStatus   = "некорректный статус бронирования"
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

// Handle GET /api/v1/admin/bookings/export
// Query params: status (можно несколько или через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	statuses := make([]string, 0)
	for _, raw := range r.URL.Query()["status"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	data, err := h.service.ExportBookings(r.Context(), statuses, actor)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings/export - Access denied: user=%s", actor.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /admin/bookings/export - Invalid status filter %v: %v", statuses, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings/export - Failed to export: error=%v", err)
			handlers.RespondDomainError(w, r, err)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported %d bytes for user=%s", len(data), actor.Email)
	handlers.RespondFile(w, xlsxContentType, exportFilename(statuses), data)
}

func exportFilename(statuses []string) string {
	if len(statuses) == 0 {
		return "bookings.xlsx"
	}
	return fmt.Sprintf("bookings-%s.xlsx", strings.Join(statuses, "-"))
}
