package get_receipt

import (
	"context"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

type ReportService interface {
	Receipt(ctx context.Context, paymentID int64, caller domain.Identity) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
