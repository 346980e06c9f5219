package admin_courts

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/courts/models"
)

type CourtService interface {
	Create(ctx context.Context, req *models.CourtRequest, actor domain.Identity) (*domain.Court, error)
	Update(ctx context.Context, id int64, req *models.CourtRequest, actor domain.Identity) (*domain.Court, error)
	Delete(ctx context.Context, id int64, actor domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
