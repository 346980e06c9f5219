package coupons

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	couponRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/coupon"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons/models"
	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
	"github.com/m04kA/SMC-ClubBookingService/pkg/ptr"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*domain.Coupon)
	return out, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Coupon, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*domain.Coupon)
	return out, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, activeOnly bool) ([]domain.Coupon, error) {
	args := m.Called(ctx, activeOnly)
	out, _ := args.Get(0).([]domain.Coupon)
	return out, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*domain.Coupon)
	return out, args.Error(1)
}

func (m *mockRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type fixedTime struct{}

func (fixedTime) Now() time.Time { return testNow }

var (
	admin  = domain.Identity{Email: "admin@club.test", Role: domain.RoleAdmin}
	player = domain.Identity{Email: "player@club.test", Role: domain.RoleMember}
)

func newTestService() (*Service, *mockRepo) {
	repo := &mockRepo{}
	return NewService(repo, fixedTime{}, logger.Nop{}), repo
}

func catalog() []domain.Coupon {
	future := testNow.Add(24 * time.Hour)
	past := testNow.Add(-time.Hour)
	return []domain.Coupon{
		{ID: 1, Code: "SAVE20", DiscountType: domain.DiscountPercentage, Value: 20, Expiry: &future, IsActive: true},
		{ID: 2, Code: "FLAT100", DiscountType: domain.DiscountFixed, Value: 100, IsActive: true},
		{ID: 3, Code: "OLD", DiscountType: domain.DiscountFixed, Value: 10, Expiry: &past, IsActive: true},
	}
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Coupon) bool {
		return c.Code == "SAVE10" && c.DiscountType == domain.DiscountPercentage && c.IsActive
	})).Return(&domain.Coupon{ID: 5, Code: "SAVE10", DiscountType: domain.DiscountPercentage, Value: 10, IsActive: true}, nil)

	resp, err := svc.Create(context.Background(), &models.CouponRequest{Code: " save10 ", Value: 10}, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "percentage", resp.DiscountType)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CouponRequest
	}{
		{name: "short code", req: models.CouponRequest{Code: "AB", Value: 10}},
		{name: "symbols in code", req: models.CouponRequest{Code: "SAVE-10", Value: 10}},
		{name: "percentage over 100", req: models.CouponRequest{Code: "SAVE", Value: 150}},
		{name: "zero percentage", req: models.CouponRequest{Code: "SAVE", Value: 0}},
		{name: "negative fixed", req: models.CouponRequest{Code: "SAVE", DiscountType: "fixed", Value: -1}},
		{name: "unknown type", req: models.CouponRequest{Code: "SAVE", DiscountType: "bogo", Value: 1}},
		{name: "expiry in past", req: models.CouponRequest{Code: "SAVE", Value: 5, Expiry: ptr.Ptr("2026-03-01")}},
		{name: "bad expiry", req: models.CouponRequest{Code: "SAVE", Value: 5, Expiry: ptr.Ptr("tomorrow")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			req := tt.req
			_, err := svc.Create(context.Background(), &req, admin)
			assert.ErrorIs(t, err, domain.ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_Duplicate(t *testing.T) {
	svc, repo := newTestService()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, couponRepo.ErrDuplicateCode)

	_, err := svc.Create(context.Background(), &models.CouponRequest{Code: "SAVE10", Value: 10}, admin)
	assert.ErrorIs(t, err, ErrDuplicateCode)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestManagementRequiresAdmin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CouponRequest{Code: "SAVE10", Value: 10}, player)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.Update(ctx, 1, &models.CouponRequest{Code: "SAVE10", Value: 10}, player)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, 1, player), domain.ErrForbidden)
	assert.ErrorIs(t, svc.Deactivate(ctx, 1, player), domain.ErrForbidden)
	_, err = svc.List(ctx, player)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	repo.AssertExpectations(t)
}

func TestUpdate_AllowsPastExpiry(t *testing.T) {
	svc, repo := newTestService()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Coupon) bool { return c.ID == 3 })).
		Return(&domain.Coupon{ID: 3, Code: "OLD"}, nil)

	_, err := svc.Update(context.Background(), 3, &models.CouponRequest{Code: "OLD", Value: 5, Expiry: ptr.Ptr("2026-03-01")}, admin)
	assert.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo := newTestService()
	repo.On("Delete", mock.Anything, int64(9)).Return(couponRepo.ErrCouponNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 9, admin), domain.ErrNotFound)
}

func TestListUsable_SkipsExpired(t *testing.T) {
	svc, repo := newTestService()
	repo.On("List", mock.Anything, true).Return(catalog(), nil)

	resp, err := svc.ListUsable(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Coupons, 2)
	assert.Equal(t, "SAVE20", resp.Coupons[0].Code)
	assert.Equal(t, "FLAT100", resp.Coupons[1].Code)
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		code      string
		valid     bool
		discount  float64
		final     float64
	}{
		{name: "percentage", basePrice: 500, code: "SAVE20", valid: true, discount: 100, final: 400},
		{name: "lower case code", basePrice: 500, code: "save20", valid: true, discount: 100, final: 400},
		{name: "fixed clamped", basePrice: 50, code: "FLAT100", valid: true, discount: 50, final: 0},
		{name: "expired", basePrice: 500, code: "OLD", valid: false, discount: 0, final: 500},
		{name: "unknown", basePrice: 500, code: "NOPE", valid: false, discount: 0, final: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			repo.On("List", mock.Anything, true).Return(catalog(), nil)

			resp, err := svc.Preview(context.Background(), &models.PreviewRequest{BasePrice: tt.basePrice, Code: tt.code})
			require.NoError(t, err)
			assert.Equal(t, tt.valid, resp.Valid)
			assert.Equal(t, tt.discount, resp.Discount)
			assert.Equal(t, tt.final, resp.FinalAmount)
		})
	}
}

func TestPreview_InvalidBasePrice(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Preview(context.Background(), &models.PreviewRequest{BasePrice: -1, Code: "SAVE20"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseExpiry(t *testing.T) {
	got, err := models.ParseExpiry(ptr.Ptr("2026-03-10"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), *got)

	got, err = models.ParseExpiry(ptr.Ptr("2026-03-10T15:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())

	got, err = models.ParseExpiry(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
