package export_bookings

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

type ReportService interface {
	ExportBookings(ctx context.Context, statuses []string, actor domain.Identity) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
