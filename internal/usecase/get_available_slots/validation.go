package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает дату
func validateRequest(req *Request) (time.Time, error) {
	if req.CourtID <= 0 {
		return time.Time{}, fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}

	raw := strings.TrimSpace(req.Date)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, raw)
	}
	return date, nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	if isDateInPast(date, now) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}
	return nil
}
