package create_payment_order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/razorpay"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type stubBookings map[int64]*domain.Booking

func (s stubBookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

type staticCatalog []domain.Coupon

func (c staticCatalog) List(context.Context, bool) ([]domain.Coupon, error) {
	return c, nil
}

type mockOrders struct {
	mock.Mock
}

func (m *mockOrders) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*razorpay.Order, error) {
	args := m.Called(ctx, amountMinor, receipt)
	o, _ := args.Get(0).(*razorpay.Order)
	return o, args.Error(1)
}

func (m *mockOrders) KeyID() string { return "rzp_test_key" }

type fixedTime struct{}

func (fixedTime) Now() time.Time { return testNow }

var player = domain.Identity{Email: "player@club.test", Role: domain.RoleUser}

func newTestUseCase(status domain.BookingStatus, base float64) (*UseCase, *mockOrders) {
	bookings := stubBookings{42: {ID: 42, UserEmail: player.Email, BasePrice: base,
		Status: status, PaymentStatus: domain.PaymentNotPaid}}
	catalog := staticCatalog{
		{ID: 1, Code: "SAVE20", DiscountType: domain.DiscountPercentage, Value: 20, IsActive: true},
		{ID: 2, Code: "FLAT100", DiscountType: domain.DiscountFixed, Value: 100, IsActive: true},
	}
	orders := &mockOrders{}
	uc := NewUseCase(bookings, catalog, orders, logger.Nop{})
	uc.timeProvider = fixedTime{}
	return uc, orders
}

func TestExecute_CreatesOrderForDiscountedAmount(t *testing.T) {
	uc, orders := newTestUseCase(domain.StatusApproved, 500)
	orders.On("CreateOrder", mock.Anything, int64(40000), "booking_42").
		Return(&razorpay.Order{ID: "order_1", AmountMinor: 40000, Currency: "INR", Receipt: "booking_42"}, nil)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, Requester: player, CouponCode: "save20"})
	require.NoError(t, err)

	assert.Equal(t, "order_1", resp.OrderID)
	assert.Equal(t, "rzp_test_key", resp.KeyID)
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, 400.0, resp.Amount)
	assert.Equal(t, 100.0, resp.Discount)
	assert.Equal(t, "SAVE20", *resp.CouponCode)
	assert.False(t, resp.Free)
}

func TestExecute_FreeBookingSkipsOrder(t *testing.T) {
	uc, orders := newTestUseCase(domain.StatusApproved, 50)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, Requester: player, CouponCode: "FLAT100"})
	require.NoError(t, err)

	assert.True(t, resp.Free)
	assert.Empty(t, resp.OrderID)
	assert.Equal(t, 0.0, resp.Amount)
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		req     Request
		wantErr error
	}{
		{name: "pending booking", status: domain.StatusPending, req: Request{BookingID: 42, Requester: player}, wantErr: domain.ErrInvalidState},
		{name: "not the requester", status: domain.StatusApproved, req: Request{BookingID: 42, Requester: domain.Identity{Email: "x@club.test", Role: domain.RoleUser}}, wantErr: domain.ErrForbidden},
		{name: "unknown booking", status: domain.StatusApproved, req: Request{BookingID: 7, Requester: player}, wantErr: domain.ErrNotFound},
		{name: "unknown coupon", status: domain.StatusApproved, req: Request{BookingID: 42, Requester: player, CouponCode: "NOPE"}, wantErr: ErrInvalidCoupon},
		{name: "bad id", status: domain.StatusApproved, req: Request{BookingID: 0, Requester: player}, wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, orders := newTestUseCase(tt.status, 500)

			req := tt.req
			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
			orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_ProcessorFailure(t *testing.T) {
	uc, orders := newTestUseCase(domain.StatusApproved, 500)
	orders.On("CreateOrder", mock.Anything, int64(50000), "booking_42").Return(nil, errors.New("gateway down"))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Requester: player})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
