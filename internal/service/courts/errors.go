package courts

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = fmt.Errorf("courts: court not found: %w", domain.ErrNotFound)

	// ErrCourtInUse возвращается при удалении корта с бронированиями
	ErrCourtInUse = fmt.Errorf("courts: court has bookings: %w", domain.ErrConflict)

	// ErrAccessDenied возвращается, когда у пользователя нет прав на изменение каталога
	ErrAccessDenied = fmt.Errorf("courts: access denied: %w", domain.ErrForbidden)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("courts: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courts: internal error")
)
