package finalize_payment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("finalize_payment: booking not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда оплачивает не автор бронирования
	ErrAccessDenied = fmt.Errorf("finalize_payment: only the requester can pay: %w", domain.ErrForbidden)

	// ErrInvalidCoupon возвращается, когда указанный купон не найден, неактивен или истек
	ErrInvalidCoupon = fmt.Errorf("finalize_payment: coupon is invalid or expired: %w", domain.ErrValidation)

	// ErrAmountMismatch возвращается, когда сумма клиента не совпадает с рассчитанной.
	// Оплата блокируется, сумма не корректируется
	ErrAmountMismatch = fmt.Errorf("finalize_payment: amount does not match: %w", domain.ErrPricingMismatch)

	// ErrAlreadyPaid возвращается, когда бронирование оплатили параллельно
	ErrAlreadyPaid = fmt.Errorf("finalize_payment: booking is already paid: %w", domain.ErrInvalidState)

	// ErrPaymentDeclined возвращается, когда платежная система не подтвердила транзакцию
	ErrPaymentDeclined = fmt.Errorf("finalize_payment: payment was not confirmed: %w", domain.ErrPaymentDeclined)

	// ErrProcessorUnavailable возвращается, когда платежная система недоступна
	ErrProcessorUnavailable = fmt.Errorf("finalize_payment: payment processor unavailable: %w", domain.ErrUnavailable)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("finalize_payment: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("finalize_payment: internal error")
)
