package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, id int64, actor domain.Identity) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
