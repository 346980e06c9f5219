package coupons

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = fmt.Errorf("coupons: coupon not found: %w", domain.ErrNotFound)

	// ErrDuplicateCode возвращается, когда активный купон с таким кодом уже есть
	ErrDuplicateCode = fmt.Errorf("coupons: active coupon with this code already exists: %w", domain.ErrConflict)

	// ErrAccessDenied возвращается, когда у пользователя нет прав на управление купонами
	ErrAccessDenied = fmt.Errorf("coupons: access denied: %w", domain.ErrForbidden)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("coupons: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("coupons: internal error")
)
