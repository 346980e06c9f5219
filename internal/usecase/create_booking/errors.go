package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = fmt.Errorf("create_booking: court not found: %w", domain.ErrNotFound)

	// ErrSlotUnavailable возвращается, когда слот уже занят подтвержденным бронированием
	ErrSlotUnavailable = fmt.Errorf("create_booking: slot is not available: %w", domain.ErrConflict)

	// ErrPriceMismatch возвращается, когда цена клиента не совпадает с ценой корта
	ErrPriceMismatch = fmt.Errorf("create_booking: price does not match court price: %w", domain.ErrPricingMismatch)

	// ErrBookingContended возвращается, когда конкурентное бронирование тех же слотов
	// откатило транзакцию; запрос можно повторить
	ErrBookingContended = fmt.Errorf("create_booking: concurrent booking of the same slots, retry: %w", domain.ErrUnavailable)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
