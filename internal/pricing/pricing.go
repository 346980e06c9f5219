// Package pricing рассчитывает итоговую сумму бронирования с учетом купона.
// Функции пакета чистые: каталог купонов и текущее время передаются вызывающим кодом
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrInvalidBasePrice возвращается для отрицательной или нечисловой базовой цены
	ErrInvalidBasePrice = fmt.Errorf("%w: pricing: base price must be a non-negative number", domain.ErrValidation)

	// ErrCouponNotApplicable код указан, но купон не найден, неактивен или истек
	ErrCouponNotApplicable = errors.New("pricing: coupon is invalid or expired")
)

// Quote результат применения купона
type Quote struct {
	BasePrice   float64
	Discount    float64
	FinalAmount float64
	// Matched nil, если код не найден, купон неактивен или истек
	Matched *domain.Coupon
}

// HasDiscount returns true if a coupon was applied
func (q Quote) HasDiscount() bool {
	return q.Matched != nil
}

// CouponCode код примененного купона или nil
func (q Quote) CouponCode() *string {
	if q.Matched == nil {
		return nil
	}
	code := q.Matched.Code
	return &code
}

// ApplyCoupon ищет купон code в catalog и считает скидку от basePrice.
// Пустой, неизвестный, неактивный или истекший код дает Quote без скидки и без ошибки.
// Некорректные записи каталога пропускаются
func ApplyCoupon(basePrice float64, code string, catalog []domain.Coupon, now time.Time) (Quote, error) {
	if math.IsNaN(basePrice) || math.IsInf(basePrice, 0) || basePrice < 0 {
		return Quote{}, ErrInvalidBasePrice
	}

	quote := Quote{BasePrice: basePrice, FinalAmount: basePrice}

	matched := lookup(code, catalog)
	if matched == nil || !matched.IsUsable(now) {
		return quote, nil
	}

	discount := discountFor(basePrice, matched)

	quote.Discount = discount
	quote.FinalAmount = math.Max(0, basePrice-discount)
	quote.Matched = matched
	return quote, nil
}

// lookup возвращает копию первой корректной записи с кодом code
func lookup(code string, catalog []domain.Coupon) *domain.Coupon {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}

	for i := range catalog {
		if !catalog[i].IsWellFormed() || !catalog[i].MatchesCode(code) {
			continue
		}
		c := catalog[i]
		return &c
	}
	return nil
}

func discountFor(basePrice float64, c *domain.Coupon) float64 {
	switch c.DiscountType {
	case domain.DiscountPercentage:
		return basePrice * c.Value / 100
	case domain.DiscountFixed:
		return math.Min(c.Value, basePrice)
	default:
		return 0
	}
}

// RequireCoupon возвращает ErrCouponNotApplicable, если код был указан, но скидка не применилась
func RequireCoupon(code string, q Quote) error {
	if strings.TrimSpace(code) != "" && q.Matched == nil {
		return ErrCouponNotApplicable
	}
	return nil
}
