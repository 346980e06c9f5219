package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// Request модели

// CouponRequest запрос на создание или полное обновление купона
type CouponRequest struct {
	Code         string  `json:"code" validate:"required,min=3,max=32,alphanum"`
	DiscountType string  `json:"discountType" validate:"omitempty,oneof=percentage fixed"`
	Value        float64 `json:"value" validate:"gte=0"`
	Description  string  `json:"description" validate:"max=500"`
	Expiry       *string `json:"expiry,omitempty"`   // "2025-10-15" или RFC3339
	IsActive     *bool   `json:"isActive,omitempty"` // По умолчанию true
}

// ToDomain собирает купон из запроса
func (r *CouponRequest) ToDomain() (*domain.Coupon, error) {
	discountType, err := domain.ParseDiscountType(r.DiscountType)
	if err != nil {
		return nil, err
	}

	expiry, err := ParseExpiry(r.Expiry)
	if err != nil {
		return nil, err
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &domain.Coupon{
		Code:         r.Code,
		DiscountType: discountType,
		Value:        r.Value,
		Description:  strings.TrimSpace(r.Description),
		Expiry:       expiry,
		IsActive:     active,
	}, nil
}

// PreviewRequest запрос на предварительный расчет скидки
type PreviewRequest struct {
	BasePrice float64 `json:"basePrice" validate:"gte=0"`
	Code      string  `json:"code" validate:"required"`
}

// ParseExpiry разбирает срок действия.
// Дата без времени действует до конца дня: купон истекает в начале следующего дня UTC
func ParseExpiry(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	value := strings.TrimSpace(*s)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	day, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("%w: expiry must be YYYY-MM-DD or RFC3339", domain.ErrValidation)
	}
	end := day.AddDate(0, 0, 1)
	return &end, nil
}

// Response модели

// CouponResponse ответ с данными купона
type CouponResponse struct {
	ID           int64      `json:"id"`
	Code         string     `json:"code"`
	DiscountType string     `json:"discountType"`
	Value        float64    `json:"value"`
	Description  string     `json:"description,omitempty"`
	Expiry       *time.Time `json:"expiry,omitempty"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CouponListResponse ответ со списком купонов
type CouponListResponse struct {
	Coupons []CouponResponse `json:"coupons"`
}

// PreviewResponse результат предварительного расчета.
// Неизвестный или просроченный код не ошибка: Valid = false, скидка 0
type PreviewResponse struct {
	Valid        bool    `json:"valid"`
	Code         string  `json:"code"`
	DiscountType string  `json:"discountType,omitempty"`
	BasePrice    float64 `json:"basePrice"`
	Discount     float64 `json:"discount"`
	FinalAmount  float64 `json:"finalAmount"`
	Message      string  `json:"message,omitempty"`
}

// FromDomainCoupon конвертирует domain модель в DTO
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	if c == nil {
		return nil
	}
	return &CouponResponse{
		ID:           c.ID,
		Code:         c.Code,
		DiscountType: string(c.DiscountType),
		Value:        c.Value,
		Description:  c.Description,
		Expiry:       c.Expiry,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCouponList конвертирует список domain моделей в DTO
func FromDomainCouponList(coupons []domain.Coupon) *CouponListResponse {
	resp := &CouponListResponse{Coupons: make([]CouponResponse, 0, len(coupons))}
	for i := range coupons {
		resp.Coupons = append(resp.Coupons, *FromDomainCoupon(&coupons[i]))
	}
	return resp
}
