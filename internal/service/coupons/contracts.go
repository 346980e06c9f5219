package coupons

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	Create(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error)
	GetByID(ctx context.Context, id int64) (*domain.Coupon, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Coupon, error)
	Update(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
