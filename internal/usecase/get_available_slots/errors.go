package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = fmt.Errorf("get_available_slots: court not found: %w", domain.ErrNotFound)

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = fmt.Errorf("get_available_slots: invalid date: %w", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_available_slots: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
