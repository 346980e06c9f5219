package finalize_payment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubBookingService/pkg/validation"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.CouponCode = strings.TrimSpace(req.CouponCode)
	req.TransactionID = strings.TrimSpace(req.TransactionID)

	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Requester.Email == "" {
		return fmt.Errorf("%w: requester email is required", ErrInvalidInput)
	}
	return nil
}
