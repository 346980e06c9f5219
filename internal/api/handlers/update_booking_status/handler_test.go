package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
)

type stubService struct {
	status string
	err    error
}

func (s *stubService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest, _ domain.Identity) (*models.BookingResponse, error) {
	s.status = req.Status
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: id, Status: req.Status}, nil
}

func TestHandle(t *testing.T) {
	admin := domain.Identity{Email: "admin@club.test", Role: domain.RoleAdmin}

	tests := []struct {
		name string
		path string
		body string
		err  error
		want int
	}{
		{name: "approved", path: "/bookings/1/status", body: `{"status":"approved"}`, want: http.StatusOK},
		{name: "bad id", path: "/bookings/abc/status", body: `{"status":"approved"}`, want: http.StatusBadRequest},
		{name: "bad body", path: "/bookings/1/status", body: `{`, want: http.StatusBadRequest},
		{name: "not found", path: "/bookings/1/status", body: `{"status":"approved"}`, err: bookings.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "slot taken", path: "/bookings/1/status", body: `{"status":"approved"}`, err: bookings.ErrSlotUnavailable, want: http.StatusConflict},
		{name: "already decided", path: "/bookings/1/status", body: `{"status":"rejected"}`, err: bookings.ErrStatusChanged, want: http.StatusConflict},
		{name: "unknown status", path: "/bookings/1/status", body: `{"status":"maybe"}`, err: fmt.Errorf("%w: status", bookings.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "not admin", path: "/bookings/1/status", body: `{"status":"approved"}`, err: bookings.ErrAccessDenied, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/bookings/{bookingId}/status", NewHandler(&stubService{err: tt.err}, logger.Nop{}).Handle)

			req := httptest.NewRequest(http.MethodPatch, tt.path, strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithIdentity(req.Context(), admin))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
