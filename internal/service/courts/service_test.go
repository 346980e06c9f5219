package courts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/courts/models"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Court)
	return c, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]*domain.Court, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*domain.Court)
	return list, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*domain.Court)
	return out, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*domain.Court)
	return out, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

var (
	admin  = domain.Identity{Subject: "1", Email: "admin@club.test", Role: domain.RoleAdmin}
	member = domain.Identity{Subject: "2", Email: "member@club.test", Role: domain.RoleMember}
)

var testCourts = []*domain.Court{
	{ID: 1, Name: "Court A", Type: "Badminton", Price: 250, Slots: []string{"09:00-10:00"}},
	{ID: 2, Name: "Court B", Type: "Tennis", Price: 400},
}

func TestList_CachesWithinWindow(t *testing.T) {
	repo := &mockRepo{}
	clock := &manualClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewService(repo, 10*time.Minute, clock, logger.Nop{})

	repo.On("List", mock.Anything).Return(testCourts, nil).Once()

	for i := 0; i < 3; i++ {
		courts, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, courts, 2)
	}
	repo.AssertNumberOfCalls(t, "List", 1)

	// Список прогревает кеш по ID
	court, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Tennis", court.Type)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestList_RefreshesAfterWindow(t *testing.T) {
	repo := &mockRepo{}
	clock := &manualClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewService(repo, 10*time.Minute, clock, logger.Nop{})

	repo.On("List", mock.Anything).Return(testCourts, nil).Twice()

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	clock.now = clock.now.Add(11 * time.Minute)
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "List", 2)
}

func TestList_ServesStaleOnFailure(t *testing.T) {
	repo := &mockRepo{}
	clock := &manualClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewService(repo, time.Minute, clock, logger.Nop{})

	repo.On("List", mock.Anything).Return(testCourts, nil).Once()
	repo.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour)
	courts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courts, 2)
}

func TestList_FailureWithoutCache(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, time.Minute, &manualClock{now: time.Now()}, logger.Nop{})
	repo.On("List", mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, time.Minute, &manualClock{now: time.Now()}, logger.Nop{})
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, courtRepo.ErrCourtNotFound)

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCourtNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_InvalidatesCache(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, 10*time.Minute, &manualClock{now: time.Now()}, logger.Nop{})

	repo.On("List", mock.Anything).Return(testCourts, nil).Once()
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
		return c.Name == "Court C" && c.Price == 300 && len(c.Slots) == 2
	})).Return(&domain.Court{ID: 3, Name: "Court C", Type: "Squash", Price: 300}, nil)

	created, err := svc.Create(context.Background(), &models.CourtRequest{
		Name:  " Court C ",
		Type:  "Squash",
		Price: 300,
		Slots: []string{"09:00-10:00", "", "10:00-11:00", "09:00-10:00"},
	}, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	withNew := append(append([]*domain.Court{}, testCourts...), created)
	repo.On("List", mock.Anything).Return(withNew, nil).Once()
	courts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courts, 3)
	repo.AssertNumberOfCalls(t, "List", 2)
}

func TestUpdate_RefreshesCachedCourt(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, 10*time.Minute, &manualClock{now: time.Now()}, logger.Nop{})

	repo.On("GetByID", mock.Anything, int64(1)).Return(testCourts[0], nil).Once()
	_, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	repriced := &domain.Court{ID: 1, Name: "Court A", Type: "Badminton", Price: 275, Slots: []string{"09:00-10:00"}}
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
		return c.ID == 1 && c.Price == 275
	})).Return(repriced, nil)
	_, err = svc.Update(context.Background(), 1, &models.CourtRequest{
		Name: "Court A", Type: "Badminton", Price: 275, Slots: []string{"09:00-10:00"},
	}, admin)
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, int64(1)).Return(repriced, nil).Once()
	court, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 275.0, court.Price)
}

func TestCourtWrites_Rejected(t *testing.T) {
	valid := &models.CourtRequest{Name: "Court C", Type: "Squash", Price: 300}

	tests := []struct {
		name  string
		req   *models.CourtRequest
		actor domain.Identity
		want  error
	}{
		{name: "member cannot manage courts", req: valid, actor: member, want: domain.ErrForbidden},
		{name: "missing name", req: &models.CourtRequest{Type: "Squash", Price: 300}, actor: admin, want: domain.ErrValidation},
		{name: "blank name", req: &models.CourtRequest{Name: "   ", Type: "Squash", Price: 300}, actor: admin, want: domain.ErrValidation},
		{name: "negative price", req: &models.CourtRequest{Name: "Court C", Type: "Squash", Price: -1}, actor: admin, want: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := NewService(repo, time.Minute, &manualClock{now: time.Now()}, logger.Nop{})

			_, err := svc.Create(context.Background(), tt.req, tt.actor)
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("court with bookings", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, time.Minute, &manualClock{now: time.Now()}, logger.Nop{})
		repo.On("Delete", mock.Anything, int64(1)).Return(courtRepo.ErrCourtInUse)

		err := svc.Delete(context.Background(), 1, admin)
		assert.ErrorIs(t, err, ErrCourtInUse)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown court", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, time.Minute, &manualClock{now: time.Now()}, logger.Nop{})
		repo.On("Delete", mock.Anything, int64(9)).Return(courtRepo.ErrCourtNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), 9, admin), ErrCourtNotFound)
	})

	t.Run("deleted court disappears from cache", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, 10*time.Minute, &manualClock{now: time.Now()}, logger.Nop{})
		repo.On("GetByID", mock.Anything, int64(2)).Return(testCourts[1], nil).Once()
		_, err := svc.Get(context.Background(), 2)
		require.NoError(t, err)

		repo.On("Delete", mock.Anything, int64(2)).Return(nil)
		require.NoError(t, svc.Delete(context.Background(), 2, admin))

		repo.On("GetByID", mock.Anything, int64(2)).Return(nil, courtRepo.ErrCourtNotFound).Once()
		_, err = svc.Get(context.Background(), 2)
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("member is forbidden", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, time.Minute, &manualClock{now: time.Now()}, logger.Nop{})

		assert.ErrorIs(t, svc.Delete(context.Background(), 2, member), domain.ErrForbidden)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
