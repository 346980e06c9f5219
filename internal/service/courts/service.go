package courts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/courts/models"
	"github.com/m04kA/SMC-ClubBookingService/pkg/cache"
	"github.com/m04kA/SMC-ClubBookingService/pkg/validation"
)

const listKey = "all"

// Service каталог кортов с кешированием.
// Свежая запись отдается без обращения к хранилищу; устаревшая отдается,
// только если хранилище недоступно
type Service struct {
	courtRepo    CourtRepository
	list         *cache.Cache[string, []*domain.Court]
	byID         *cache.Cache[int64, *domain.Court]
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает каталог кортов с окном свежести ttl
func NewService(courtRepo CourtRepository, ttl time.Duration, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		courtRepo:    courtRepo,
		list:         cache.New[string, []*domain.Court](ttl).WithClock(timeProvider.Now),
		byID:         cache.New[int64, *domain.Court](ttl).WithClock(timeProvider.Now),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает все корты клуба
func (s *Service) List(ctx context.Context) ([]*domain.Court, error) {
	cached, fresh, found := s.list.Get(listKey)
	if found && fresh {
		return cached, nil
	}

	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		if found {
			s.logger.Error("List: repository error, serving stale courts: %v", err)
			return cached, nil
		}
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	s.list.Put(listKey, courts, now)
	for _, c := range courts {
		s.byID.Put(c.ID, c, now)
	}

	s.logger.Info("List: loaded %d courts", len(courts))
	return courts, nil
}

// Get возвращает корт по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Court, error) {
	cached, fresh, found := s.byID.Get(id)
	if found && fresh {
		return cached, nil
	}

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Get: court id=%d not found", id)
			s.byID.Invalidate(id)
			return nil, ErrCourtNotFound
		}
		if found {
			s.logger.Error("Get: repository error, serving stale court id=%d: %v", id, err)
			return cached, nil
		}
		s.logger.Error("Get: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.byID.Put(id, court, s.timeProvider.Now())
	return court, nil
}

// Create добавляет корт. Только для администратора
func (s *Service) Create(ctx context.Context, req *models.CourtRequest, actor domain.Identity) (*domain.Court, error) {
	s.logger.Info("Create: court name=%s by user=%s", req.Name, actor.Email)

	court, err := s.buildCourt("Create", req, actor)
	if err != nil {
		return nil, err
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		return nil, s.repoError("Create", err)
	}

	s.Invalidate()
	s.logger.Info("Create: court id=%d created", created.ID)
	return created, nil
}

// Update полностью заменяет данные корта.
// Цена существующих бронирований не меняется: она зафиксирована при создании
func (s *Service) Update(ctx context.Context, id int64, req *models.CourtRequest, actor domain.Identity) (*domain.Court, error) {
	s.logger.Info("Update: court id=%d by user=%s", id, actor.Email)

	court, err := s.buildCourt("Update", req, actor)
	if err != nil {
		return nil, err
	}
	court.ID = id

	updated, err := s.courtRepo.Update(ctx, court)
	if err != nil {
		return nil, s.repoError("Update", err)
	}

	s.Invalidate()
	s.logger.Info("Update: court id=%d updated", id)
	return updated, nil
}

// Delete удаляет корт без бронирований
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Identity) error {
	if err := s.checkManager("Delete", actor); err != nil {
		return err
	}

	if err := s.courtRepo.Delete(ctx, id); err != nil {
		return s.repoError("Delete", err)
	}

	s.Invalidate()
	s.logger.Info("Delete: court id=%d deleted by user=%s", id, actor.Email)
	return nil
}

// Invalidate сбрасывает кеш каталога
func (s *Service) Invalidate() {
	s.list.Purge()
	s.byID.Purge()
}

func (s *Service) checkManager(op string, actor domain.Identity) error {
	if !actor.Role.CanManageCourts() {
		s.logger.Warn("%s: user=%s with role=%s cannot manage courts", op, actor.Email, actor.Role)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) buildCourt(op string, req *models.CourtRequest, actor domain.Identity) (*domain.Court, error) {
	if err := s.checkManager(op, actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("%s: validation failed: %v", op, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	court := req.ToDomain()
	if err := court.Normalize(); err != nil {
		s.logger.Warn("%s: validation failed: %v", op, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return court, nil
}

func (s *Service) repoError(op string, err error) error {
	switch {
	case errors.Is(err, courtRepo.ErrCourtNotFound):
		s.logger.Warn("%s: court not found", op)
		return ErrCourtNotFound
	case errors.Is(err, courtRepo.ErrCourtInUse):
		s.logger.Warn("%s: court has bookings", op)
		return ErrCourtInUse
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
