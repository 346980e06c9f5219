package finalize_payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	finalizePayment "github.com/m04kA/SMC-ClubBookingService/internal/usecase/finalize_payment"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
)

type stubUseCase struct {
	got  *finalizePayment.Request
	resp *finalizePayment.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *finalizePayment.Request) (*finalizePayment.Response, error) {
	s.got = req
	return s.resp, s.err
}

var player = domain.Identity{Email: "player@club.test", Role: domain.RoleUser}

func serve(t *testing.T, uc *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/payment", NewHandler(uc, logger.Nop{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/bookings/42/payment", strings.NewReader(body))
	req = req.WithContext(middleware.WithIdentity(req.Context(), player))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	paidAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	amount := 400.0
	code := "SAVE20"
	uc := &stubUseCase{resp: &finalizePayment.Response{
		Booking: &domain.Booking{ID: 42, UserEmail: player.Email, Status: domain.StatusConfirmed,
			PaymentStatus: domain.PaymentPaid, PaidAmount: &amount, CouponUsed: &code, PaymentDate: &paidAt},
		Payment: &domain.Payment{ID: 5, BookingID: 42, Amount: 400, OriginalAmount: 500, Discount: 100,
			CouponUsed: &code, TransactionID: "pay_1", Status: domain.PaymentRecordCompleted, PaymentDate: paidAt},
	}}

	rec := serve(t, uc, `{"couponCode":"SAVE20","amount":400,"transactionId":"pay_1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(42), uc.got.BookingID)
	assert.Equal(t, player, uc.got.Requester)
	assert.Equal(t, 400.0, uc.got.Amount)

	var body FinalizePaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "confirmed", body.Booking.Status)
	assert.Equal(t, "paid", body.Booking.PaymentStatus)
	assert.Equal(t, 100.0, body.Payment.Discount)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: finalizePayment.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "stranger", err: finalizePayment.ErrAccessDenied, want: http.StatusForbidden},
		{name: "invalid coupon", err: finalizePayment.ErrInvalidCoupon, want: http.StatusBadRequest},
		{name: "amount mismatch", err: fmt.Errorf("%w: expected 400.00", finalizePayment.ErrAmountMismatch), want: http.StatusUnprocessableEntity},
		{name: "already paid", err: finalizePayment.ErrAlreadyPaid, want: http.StatusConflict},
		{name: "pending", err: fmt.Errorf("%w: booking in status pending cannot be paid", domain.ErrInvalidState), want: http.StatusConflict},
		{name: "declined", err: finalizePayment.ErrPaymentDeclined, want: http.StatusPaymentRequired},
		{name: "processor down", err: finalizePayment.ErrProcessorUnavailable, want: http.StatusServiceUnavailable},
		{name: "internal", err: finalizePayment.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &stubUseCase{err: tt.err}, `{"amount":500,"transactionId":"pay_1"}`)

			assert.Equal(t, tt.want, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	uc := &stubUseCase{}
	rec := serve(t, uc, `{"amount":"four hundred"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
