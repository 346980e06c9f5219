package razorpay

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrPaymentRejected платежная система не подтвердила платеж (статус не captured/authorized)
	ErrPaymentRejected = errors.New("razorpay: payment was not captured")

	// ErrInvalidSignature подпись checkout не совпала
	ErrInvalidSignature = errors.New("razorpay: invalid payment signature")

	// ErrAmountMismatch сумма платежа в платежной системе отличается от рассчитанной
	ErrAmountMismatch = fmt.Errorf("%w: razorpay: captured amount differs from the booking amount", domain.ErrPricingMismatch)

	// ErrCurrencyMismatch валюта платежа отличается от валюты клуба
	ErrCurrencyMismatch = errors.New("razorpay: payment currency differs")

	// ErrPaymentNotFound платеж с таким ID не найден
	ErrPaymentNotFound = errors.New("razorpay: payment not found")

	// ErrInvalidResponse возвращается при некорректном ответе платежной системы
	ErrInvalidResponse = errors.New("razorpay: invalid response")

	// ErrTimeout платежная система не ответила до истечения контекста
	ErrTimeout = fmt.Errorf("razorpay: request timed out: %w", domain.ErrUnavailable)

	// ErrInternal возвращается при недоступности платежной системы
	ErrInternal = errors.New("razorpay: internal error")
)
