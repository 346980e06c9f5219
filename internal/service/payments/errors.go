package payments

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = fmt.Errorf("payments: payment not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается при попытке посмотреть чужой платеж
	ErrAccessDenied = fmt.Errorf("payments: access denied: %w", domain.ErrForbidden)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments: internal error")
)
