package finalize_payment

import (
	"context"

	finalizePayment "github.com/m04kA/SMC-ClubBookingService/internal/usecase/finalize_payment"
)

type FinalizePaymentUseCase interface {
	Execute(ctx context.Context, req *finalizePayment.Request) (*finalizePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
