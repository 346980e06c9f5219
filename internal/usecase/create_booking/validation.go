package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/validation"
)

// validateRequest валидирует входные данные запроса и разбирает дату
func validateRequest(req *Request) (time.Time, error) {
	if err := validation.Struct(req); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in format YYYY-MM-DD", ErrInvalidInput)
	}

	return date, nil
}
