package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	out, _ := args.Get(0).([]*domain.Booking)
	return out, args.Error(1)
}

type stubCourts map[int64]*domain.Court

func (s stubCourts) Get(_ context.Context, id int64) (*domain.Court, error) {
	c, ok := s[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

type fixedTime struct{}

func (fixedTime) Now() time.Time { return testNow }

func newTestUseCase(repo *mockRepo) *UseCase {
	courts := stubCourts{1: {ID: 1, Name: "Court A", Type: "Badminton", Price: 250,
		Slots: []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}}}
	uc := NewUseCase(repo, courts, logger.Nop{})
	uc.timeProvider = fixedTime{}
	return uc
}

func TestExecute_MarksHeldAndPendingSlots(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return *f.CourtID == 1 && f.Date.Format(domain.DateFormat) == "2026-03-11" && len(f.Statuses) == 3
	})).Return([]*domain.Booking{
		{ID: 1, Status: domain.StatusApproved, Slots: []string{"10:00-11:00"}},
		{ID: 2, Status: domain.StatusPending, Slots: []string{"11:00-12:00"}},
		{ID: 3, Status: domain.StatusPending, Slots: []string{"11:00-12:00", "10:00-11:00"}},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: "2026-03-11"})
	require.NoError(t, err)

	assert.Equal(t, "Badminton", resp.CourtName)
	assert.Equal(t, []domain.AvailableSlot{
		{Label: "09:00-10:00", Available: true},
		{Label: "10:00-11:00", Available: false, PendingRequests: 1},
		{Label: "11:00-12:00", Available: true, PendingRequests: 2},
	}, resp.Slots)
	assert.True(t, resp.Slots[2].IsContested())
}

func TestExecute_TodayStartedSlotsUnavailable(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: "2026-03-10"})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "past date", req: Request{CourtID: 1, Date: "2026-03-09"}, wantErr: ErrInvalidDate},
		{name: "malformed date", req: Request{CourtID: 1, Date: "11.03.2026"}, wantErr: domain.ErrValidation},
		{name: "missing date", req: Request{CourtID: 1}, wantErr: ErrInvalidInput},
		{name: "bad court id", req: Request{CourtID: 0, Date: "2026-03-11"}, wantErr: ErrInvalidInput},
		{name: "unknown court", req: Request{CourtID: 7, Date: "2026-03-11"}, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			uc := newTestUseCase(repo)

			req := tt.req
			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: "2026-03-11"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCourtLabels_FallsBackToBookings(t *testing.T) {
	labels := courtLabels(&domain.Court{ID: 2}, []*domain.Booking{
		{Slots: []string{"18:00-19:00"}},
		{Slots: []string{"18:00-19:00", "19:00-20:00"}},
	})
	assert.Equal(t, []string{"18:00-19:00", "19:00-20:00"}, labels)
}
