package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("bookings: booking not found: %w", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = fmt.Errorf("bookings: access denied: %w", domain.ErrForbidden)

	// ErrSlotUnavailable возвращается, когда слоты уже заняты другим бронированием
	ErrSlotUnavailable = fmt.Errorf("bookings: slot already taken: %w", domain.ErrConflict)

	// ErrStatusChanged возвращается, когда статус успели изменить параллельно
	ErrStatusChanged = fmt.Errorf("bookings: booking status changed concurrently: %w", domain.ErrInvalidState)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("bookings: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
