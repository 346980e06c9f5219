package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	requester = Identity{Email: "player@club.test", Role: RoleMember}
	stranger  = Identity{Email: "other@club.test", Role: RoleUser}
	admin     = Identity{Email: "admin@club.test", Role: RoleAdmin}
)

func testCourt() *Court {
	return &Court{ID: 7, Name: "Court A", Type: "Badminton", Price: 250, Slots: []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}}
}

func pendingBooking(t *testing.T) *Booking {
	t.Helper()
	b, err := NewBooking(requester, testCourt(), testNow.AddDate(0, 0, 1), []string{"09:00-10:00", "10:00-11:00"}, testNow)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	b, err := NewBooking(requester, testCourt(), testNow, []string{" 10:00-11:00", "09:00-10:00", "10:00-11:00"}, testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, PaymentNotPaid, b.PaymentStatus)
	assert.Equal(t, []string{"10:00-11:00", "09:00-10:00"}, b.Slots)
	assert.Equal(t, 500.0, b.BasePrice)
	assert.Equal(t, "Badminton", b.CourtType)
	assert.Nil(t, b.PaidAmount)
}

func TestNewBooking_Validation(t *testing.T) {
	tests := []struct {
		name      string
		requester Identity
		date      time.Time
		slots     []string
		wantErr   error
	}{
		{name: "empty slots", requester: requester, date: testNow, slots: nil, wantErr: ErrValidation},
		{name: "blank slots", requester: requester, date: testNow, slots: []string{" ", ""}, wantErr: ErrValidation},
		{name: "missing date", requester: requester, slots: []string{"09:00-10:00"}, wantErr: ErrValidation},
		{name: "date in past", requester: requester, date: testNow.AddDate(0, 0, -1), slots: []string{"09:00-10:00"}, wantErr: ErrValidation},
		{name: "unknown slot", requester: requester, date: testNow, slots: []string{"23:00-24:00"}, wantErr: ErrValidation},
		{name: "anonymous", requester: Identity{Role: RoleUser}, date: testNow, slots: []string{"09:00-10:00"}, wantErr: ErrValidation},
		{name: "invalid role", requester: Identity{Email: "x@club.test"}, date: testNow, slots: []string{"09:00-10:00"}, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBooking(tt.requester, testCourt(), tt.date, tt.slots, testNow)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, b)
		})
	}
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusApproved))
	assert.True(t, StatusPending.CanTransitionTo(StatusRejected))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusPending.CanTransitionTo(StatusConfirmed))

	assert.True(t, StatusApproved.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusApproved.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusApproved.CanTransitionTo(StatusRejected))

	for _, s := range []BookingStatus{StatusRejected, StatusCancelled, StatusConfirmed} {
		assert.True(t, s.IsTerminal(), s)
	}
	assert.False(t, StatusPending.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus(" Approved ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = ParseBookingStatus("paid")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBooking_FinalizeFromPendingFails(t *testing.T) {
	b := pendingBooking(t)

	err := b.CanFinalizePayment()
	assert.ErrorIs(t, err, ErrInvalidState)

	err = b.MarkPaid(b.BasePrice, nil, testNow)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, StatusPending, b.Status)
	assert.Nil(t, b.PaidAmount)
}

func TestBooking_ApproveTwice(t *testing.T) {
	b := pendingBooking(t)

	require.NoError(t, b.Approve(admin, testNow))
	require.NotNil(t, b.ApprovedAt)
	firstApproval := *b.ApprovedAt

	err := b.Approve(admin, testNow.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, StatusApproved, b.Status)
	assert.Equal(t, firstApproval, *b.ApprovedAt)
}

func TestBooking_ApproveRequiresAdmin(t *testing.T) {
	b := pendingBooking(t)

	assert.ErrorIs(t, b.Approve(requester, testNow), ErrForbidden)
	assert.ErrorIs(t, b.Reject(requester), ErrForbidden)
	assert.Equal(t, StatusPending, b.Status)
	assert.Nil(t, b.ApprovedAt)
}

func TestBooking_Reject(t *testing.T) {
	b := pendingBooking(t)

	require.NoError(t, b.Reject(admin))
	assert.Equal(t, StatusRejected, b.Status)
	assert.ErrorIs(t, b.Approve(admin, testNow), ErrInvalidState)
}

func TestBooking_CancelByStranger(t *testing.T) {
	b := pendingBooking(t)

	err := b.Cancel(stranger)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, StatusPending, b.Status)

	// администратор тоже не автор
	assert.ErrorIs(t, b.Cancel(admin), ErrForbidden)
}

func TestBooking_Cancel(t *testing.T) {
	b := pendingBooking(t)
	require.NoError(t, b.Cancel(Identity{Email: "PLAYER@club.test", Role: RoleMember}))
	assert.Equal(t, StatusCancelled, b.Status)

	approved := pendingBooking(t)
	require.NoError(t, approved.Approve(admin, testNow))
	require.NoError(t, approved.Cancel(requester))
	assert.Equal(t, StatusCancelled, approved.Status)
}

func TestBooking_CancelPaid(t *testing.T) {
	b := pendingBooking(t)
	require.NoError(t, b.Approve(admin, testNow))
	require.NoError(t, b.MarkPaid(400, nil, testNow))

	assert.ErrorIs(t, b.Cancel(requester), ErrInvalidState)
	assert.Equal(t, StatusConfirmed, b.Status)
}

func TestBooking_MarkPaidOnce(t *testing.T) {
	b := pendingBooking(t)
	require.NoError(t, b.Approve(admin, testNow))

	code := "SAVE20"
	require.NoError(t, b.MarkPaid(400, &code, testNow))
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, PaymentPaid, b.PaymentStatus)
	require.NotNil(t, b.PaidAmount)
	assert.Equal(t, 400.0, *b.PaidAmount)

	err := b.MarkPaid(1, nil, testNow.Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, 400.0, *b.PaidAmount)
	assert.Equal(t, "SAVE20", *b.CouponUsed)
}

func TestBooking_MarkPaidOutOfRange(t *testing.T) {
	b := pendingBooking(t)
	require.NoError(t, b.Approve(admin, testNow))

	assert.ErrorIs(t, b.MarkPaid(-1, nil, testNow), ErrValidation)
	assert.ErrorIs(t, b.MarkPaid(b.BasePrice+1, nil, testNow), ErrValidation)
	assert.Equal(t, StatusApproved, b.Status)
}

func TestBooking_MarkPaidFractionalPrice(t *testing.T) {
	court := testCourt()
	court.Price = 1.15
	b, err := NewBooking(requester, court, testNow.AddDate(0, 0, 1), []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}, testNow)
	require.NoError(t, err)
	require.NoError(t, b.Approve(admin, testNow))

	// 1.15 * 3 = 3.4499999999999997
	rounded := math.Round(b.BasePrice*100) / 100
	require.NoError(t, b.MarkPaid(rounded, nil, testNow))
	require.NotNil(t, b.PaidAmount)
	assert.Equal(t, 3.45, *b.PaidAmount)
	assert.Equal(t, StatusConfirmed, b.Status)
}

func TestBooking_MarkPaidAboveFractionalPrice(t *testing.T) {
	court := testCourt()
	court.Price = 1.15
	b, err := NewBooking(requester, court, testNow.AddDate(0, 0, 1), []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}, testNow)
	require.NoError(t, err)
	require.NoError(t, b.Approve(admin, testNow))

	assert.ErrorIs(t, b.MarkPaid(3.46, nil, testNow), ErrValidation)
	assert.Equal(t, StatusApproved, b.Status)
}

func TestBooking_ApproveLegacyUnpaid(t *testing.T) {
	b := pendingBooking(t)
	b.PaymentStatus = PaymentUnpaid
	require.NoError(t, b.Approve(admin, testNow))
	assert.NoError(t, b.CanFinalizePayment())
}

func TestOverlappingSlots(t *testing.T) {
	taken := []*Booking{
		{Status: StatusApproved, Slots: []string{"09:00-10:00"}},
		{Status: StatusPending, Slots: []string{"10:00-11:00"}},
		{Status: StatusConfirmed, Slots: []string{"11:00-12:00"}},
		{Status: StatusCancelled, Slots: []string{"12:00-13:00"}},
	}

	overlap := OverlappingSlots([]string{"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00"}, taken)
	assert.Equal(t, []string{"09:00-10:00", "11:00-12:00"}, overlap)
	assert.Empty(t, OverlappingSlots([]string{"10:00-11:00"}, taken))
}
