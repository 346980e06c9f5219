package coupons

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons/models"
)

type CouponService interface {
	ListUsable(ctx context.Context) (*models.CouponListResponse, error)
	Preview(ctx context.Context, req *models.PreviewRequest) (*models.PreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
