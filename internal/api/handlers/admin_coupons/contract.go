package admin_coupons

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons/models"
)

type CouponService interface {
	List(ctx context.Context, actor domain.Identity) (*models.CouponListResponse, error)
	Create(ctx context.Context, req *models.CouponRequest, actor domain.Identity) (*models.CouponResponse, error)
	Update(ctx context.Context, id int64, req *models.CouponRequest, actor domain.Identity) (*models.CouponResponse, error)
	Deactivate(ctx context.Context, id int64, actor domain.Identity) error
	Delete(ctx context.Context, id int64, actor domain.Identity) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
