package create_payment_order

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("create_payment_order: booking not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда заказ создает не автор бронирования
	ErrAccessDenied = fmt.Errorf("create_payment_order: only the requester can pay: %w", domain.ErrForbidden)

	// ErrInvalidCoupon возвращается, когда купон не найден, неактивен или истек
	ErrInvalidCoupon = fmt.Errorf("create_payment_order: coupon is invalid or expired: %w", domain.ErrValidation)

	// ErrProcessorUnavailable возвращается, когда платежная система недоступна
	ErrProcessorUnavailable = fmt.Errorf("create_payment_order: payment processor unavailable: %w", domain.ErrUnavailable)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_payment_order: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_order: internal error")
)
