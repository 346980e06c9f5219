package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	couponRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/coupon"
	"github.com/m04kA/SMC-ClubBookingService/internal/pricing"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons/models"
	"github.com/m04kA/SMC-ClubBookingService/pkg/validation"
)

// Service сервис для работы с купонами
type Service struct {
	couponRepo   CouponRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(couponRepo CouponRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		couponRepo:   couponRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListUsable возвращает купоны, которые можно применить прямо сейчас
func (s *Service) ListUsable(ctx context.Context) (*models.CouponListResponse, error) {
	coupons, err := s.couponRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListUsable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUsable - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	usable := make([]domain.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.IsUsable(now) && c.IsWellFormed() {
			usable = append(usable, c)
		}
	}

	return models.FromDomainCouponList(usable), nil
}

// List возвращает все купоны, включая неактивные. Только для администратора
func (s *Service) List(ctx context.Context, actor domain.Identity) (*models.CouponListResponse, error) {
	if err := s.checkManager("List", actor); err != nil {
		return nil, err
	}

	coupons, err := s.couponRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCouponList(coupons), nil
}

// Create создает купон
func (s *Service) Create(ctx context.Context, req *models.CouponRequest, actor domain.Identity) (*models.CouponResponse, error) {
	s.logger.Info("Create: coupon code=%s by user=%s", req.Code, actor.Email)

	if err := s.checkManager("Create", actor); err != nil {
		return nil, err
	}

	coupon, err := s.buildCoupon("Create", req, true)
	if err != nil {
		return nil, err
	}

	created, err := s.couponRepo.Create(ctx, coupon)
	if err != nil {
		return nil, s.repoError("Create", err)
	}

	s.logger.Info("Create: coupon id=%d code=%s created", created.ID, created.Code)
	return models.FromDomainCoupon(created), nil
}

// Update полностью заменяет данные купона
func (s *Service) Update(ctx context.Context, id int64, req *models.CouponRequest, actor domain.Identity) (*models.CouponResponse, error) {
	s.logger.Info("Update: coupon id=%d by user=%s", id, actor.Email)

	if err := s.checkManager("Update", actor); err != nil {
		return nil, err
	}

	coupon, err := s.buildCoupon("Update", req, false)
	if err != nil {
		return nil, err
	}
	coupon.ID = id

	updated, err := s.couponRepo.Update(ctx, coupon)
	if err != nil {
		return nil, s.repoError("Update", err)
	}

	s.logger.Info("Update: coupon id=%d updated", id)
	return models.FromDomainCoupon(updated), nil
}

// Deactivate выключает купон, не удаляя его
func (s *Service) Deactivate(ctx context.Context, id int64, actor domain.Identity) error {
	if err := s.checkManager("Deactivate", actor); err != nil {
		return err
	}

	if err := s.couponRepo.SetActive(ctx, id, false); err != nil {
		return s.repoError("Deactivate", err)
	}

	s.logger.Info("Deactivate: coupon id=%d deactivated by user=%s", id, actor.Email)
	return nil
}

// Delete удаляет купон. Купоны в оплаченных бронированиях хранятся кодом, история не теряется
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Identity) error {
	if err := s.checkManager("Delete", actor); err != nil {
		return err
	}

	if err := s.couponRepo.Delete(ctx, id); err != nil {
		return s.repoError("Delete", err)
	}

	s.logger.Info("Delete: coupon id=%d deleted by user=%s", id, actor.Email)
	return nil
}

// Preview считает скидку без побочных эффектов
func (s *Service) Preview(ctx context.Context, req *models.PreviewRequest) (*models.PreviewResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	catalog, err := s.couponRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("Preview: repository error: %v", err)
		return nil, fmt.Errorf("%w: Preview - repository error: %v", ErrInternal, err)
	}

	quote, err := pricing.ApplyCoupon(req.BasePrice, req.Code, catalog, s.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &models.PreviewResponse{
		Valid:       quote.HasDiscount(),
		Code:        domain.NormalizeCouponCode(req.Code),
		BasePrice:   pricing.RoundMoney(quote.BasePrice),
		Discount:    pricing.RoundMoney(quote.Discount),
		FinalAmount: pricing.RoundMoney(quote.FinalAmount),
	}
	if quote.Matched != nil {
		resp.DiscountType = string(quote.Matched.DiscountType)
		resp.Message = "Купон применен"
	} else {
		resp.Message = "Купон недействителен или истек"
	}
	return resp, nil
}

// Вспомогательные методы

func (s *Service) checkManager(op string, actor domain.Identity) error {
	if !actor.Role.CanManageCoupons() {
		s.logger.Warn("%s: user=%s with role=%s cannot manage coupons", op, actor.Email, actor.Role)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) buildCoupon(op string, req *models.CouponRequest, isNew bool) (*domain.Coupon, error) {
	req.Code = strings.TrimSpace(req.Code)
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("%s: validation failed: %v", op, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	coupon, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("%s: validation failed: %v", op, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := coupon.Validate(s.timeProvider.Now(), isNew); err != nil {
		s.logger.Warn("%s: validation failed: %v", op, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return coupon, nil
}

func (s *Service) repoError(op string, err error) error {
	switch {
	case errors.Is(err, couponRepo.ErrCouponNotFound):
		s.logger.Warn("%s: coupon not found", op)
		return ErrCouponNotFound
	case errors.Is(err, couponRepo.ErrDuplicateCode):
		s.logger.Warn("%s: duplicate coupon code", op)
		return ErrDuplicateCode
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
