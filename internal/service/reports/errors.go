package reports

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

var (
	// ErrAccessDenied возвращается, когда отчет недоступен пользователю
	ErrAccessDenied = fmt.Errorf("reports: access denied: %w", domain.ErrForbidden)

	// ErrInvalidInput возвращается при некорректных параметрах отчета
	ErrInvalidInput = fmt.Errorf("reports: invalid input data: %w", domain.ErrValidation)

	// ErrRender возвращается, если документ не удалось сформировать
	ErrRender = errors.New("reports: failed to render document")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)
