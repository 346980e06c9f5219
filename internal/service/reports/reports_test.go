package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
	"github.com/m04kA/SMC-ClubBookingService/pkg/ptr"
)

type mockPayments struct {
	mock.Mock
}

func (m *mockPayments) Get(ctx context.Context, id int64, caller domain.Identity) (*domain.Payment, error) {
	args := m.Called(ctx, id, caller)
	p, _ := args.Get(0).(*domain.Payment)
	return p, args.Error(1)
}

type mockBookings struct {
	mock.Mock
}

func (m *mockBookings) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookings) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Booking)
	return list, args.Error(1)
}

var (
	admin  = domain.Identity{Email: "admin@club.test", Role: domain.RoleAdmin}
	player = domain.Identity{Email: "player@club.test", Role: domain.RoleUser}
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            42,
		UserEmail:     player.Email,
		CourtType:     "Badminton",
		Date:          time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Slots:         []string{"09:00-10:00", "10:00-11:00"},
		BasePrice:     500,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPaid,
		CouponUsed:    ptr.Ptr("SAVE20"),
		PaidAmount:    ptr.Ptr(400.0),
	}
}

func testPayment() *domain.Payment {
	return &domain.Payment{
		ID:             5,
		BookingID:      42,
		UserEmail:      player.Email,
		Amount:         400,
		OriginalAmount: 500,
		Discount:       100,
		CouponUsed:     ptr.Ptr("SAVE20"),
		PaymentMethod:  "visa",
		CardLastFour:   ptr.Ptr("4242"),
		TransactionID:  "pay_123",
		Status:         domain.PaymentRecordCompleted,
		PaymentDate:    time.Date(2026, 3, 11, 18, 30, 0, 0, time.UTC),
	}
}

func TestRenderReceipt(t *testing.T) {
	data, err := RenderReceipt(testPayment(), testBooking())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))

	data, err = RenderReceipt(testPayment(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestReceipt(t *testing.T) {
	payments := &mockPayments{}
	bookings := &mockBookings{}
	svc := NewService(payments, bookings, logger.Nop{})

	payments.On("Get", mock.Anything, int64(5), player).Return(testPayment(), nil)
	bookings.On("GetByID", mock.Anything, int64(42)).Return(nil, errors.New("db down"))

	data, err := svc.Receipt(context.Background(), 5, player)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestReceipt_AccessDenied(t *testing.T) {
	payments := &mockPayments{}
	svc := NewService(payments, &mockBookings{}, logger.Nop{})

	stranger := domain.Identity{Email: "other@club.test", Role: domain.RoleMember}
	payments.On("Get", mock.Anything, int64(5), stranger).Return(nil, ErrAccessDenied)

	_, err := svc.Receipt(context.Background(), 5, stranger)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestExportBookings(t *testing.T) {
	bookings := &mockBookings{}
	svc := NewService(&mockPayments{}, bookings, logger.Nop{})

	bookings.On("List", mock.Anything, domain.BookingsFilter{Statuses: []domain.BookingStatus{domain.StatusConfirmed}}).
		Return([]*domain.Booking{testBooking()}, nil)

	data, err := svc.ExportBookings(context.Background(), []string{"confirmed"}, admin)
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	sheet, ok := file.Sheet[exportSheet]
	require.True(t, ok)
	require.GreaterOrEqual(t, len(sheet.Rows), 2)
	assert.Equal(t, "Booking ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, player.Email, sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "09:00-10:00, 10:00-11:00", sheet.Rows[1].Cells[4].Value)
}

func TestExportBookings_Guards(t *testing.T) {
	svc := NewService(&mockPayments{}, &mockBookings{}, logger.Nop{})

	_, err := svc.ExportBookings(context.Background(), nil, player)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.ExportBookings(context.Background(), []string{"done"}, admin)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
