package courts

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

type CourtService interface {
	List(ctx context.Context) ([]*domain.Court, error)
	Get(ctx context.Context, id int64) (*domain.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
