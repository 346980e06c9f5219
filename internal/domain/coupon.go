package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// DiscountType тип скидки купона
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var couponCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ParseDiscountType разбирает тип скидки. Пустая строка означает percentage
func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(strings.ToLower(strings.TrimSpace(s))) {
	case "", DiscountPercentage:
		return DiscountPercentage, nil
	case DiscountFixed:
		return DiscountFixed, nil
	default:
		return "", fmt.Errorf("%w: unknown discount type %q", ErrValidation, s)
	}
}

// Coupon купон на скидку
type Coupon struct {
	ID           int64
	Code         string
	DiscountType DiscountType
	Value        float64
	Description  string
	Expiry       *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsUsable купон активен и не истек на момент now
func (c *Coupon) IsUsable(now time.Time) bool {
	return c.IsActive && (c.Expiry == nil || c.Expiry.After(now))
}

// IsWellFormed проверяет, что запись каталога пригодна для расчета скидки
func (c *Coupon) IsWellFormed() bool {
	if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) || c.Value < 0 {
		return false
	}
	switch c.DiscountType {
	case DiscountPercentage:
		return c.Value > 0 && c.Value <= MaxPercentageValue
	case DiscountFixed:
		return true
	default:
		return false
	}
}

// MatchesCode сравнивает код без учета регистра и пробелов по краям
func (c *Coupon) MatchesCode(code string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Code), strings.TrimSpace(code))
}

// Validate проверяет купон перед сохранением администратором.
// Для нового купона срок действия должен быть в будущем
func (c *Coupon) Validate(now time.Time, isNew bool) error {
	c.Code = NormalizeCouponCode(c.Code)

	if len(c.Code) < MinCouponCodeLength || len(c.Code) > MaxCouponCodeLength {
		return fmt.Errorf("%w: coupon code must be %d-%d characters", ErrValidation, MinCouponCodeLength, MaxCouponCodeLength)
	}
	if !couponCodePattern.MatchString(c.Code) {
		return fmt.Errorf("%w: coupon code must contain only letters A-Z and digits", ErrValidation)
	}
	if len(c.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrValidation)
	}

	switch c.DiscountType {
	case DiscountPercentage:
		if !(c.Value > 0 && c.Value <= MaxPercentageValue) {
			return fmt.Errorf("%w: percentage value must be in (0, 100]", ErrValidation)
		}
	case DiscountFixed:
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) || c.Value < 0 {
			return fmt.Errorf("%w: fixed value must be non-negative", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown discount type %q", ErrValidation, c.DiscountType)
	}

	if isNew && c.Expiry != nil && !c.Expiry.After(now) {
		return fmt.Errorf("%w: expiry must be in the future", ErrValidation)
	}
	return nil
}

// NormalizeCouponCode приводит код к виду, в котором он хранится
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
