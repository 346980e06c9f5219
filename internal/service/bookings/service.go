package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/bookings/models"
)

// Результаты переходов для метрик
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultConflict = "conflict"
	resultError    = "error"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, caller domain.Identity) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%s", id, caller.Email)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !caller.Owns(booking.UserEmail) && !caller.Role.CanViewAllBookings() {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%d", caller.Email, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает бронирования по фильтру.
// Для всех, кроме администратора, фильтр по email принудительно равен email вызывающего
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest, caller domain.Identity) (*models.BookingListResponse, error) {
	filter := domain.BookingsFilter{Limit: req.Limit}

	switch {
	case !caller.Role.CanViewAllBookings():
		email := caller.Email
		filter.UserEmail = &email
	case req.Email != nil && strings.TrimSpace(*req.Email) != "":
		email := strings.TrimSpace(*req.Email)
		filter.UserEmail = &email
	}

	if req.Status != nil && *req.Status != "" {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s from user=%s", *req.Status, caller.Email)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", caller.Email, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for user=%s", len(bookings), caller.Email)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus применяет решение администратора: approved или rejected
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest, actor domain.Identity) (*models.BookingResponse, error) {
	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch status {
	case domain.StatusApproved:
		return s.Approve(ctx, id, actor)
	case domain.StatusRejected:
		return s.Reject(ctx, id, actor)
	default:
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrInvalidInput)
	}
}

// Approve подтверждает бронирование.
// Слоты проверяются на пересечение с уже подтвержденными бронированиями.
// При гонке двух администраторов побеждает первая запись, второй получает ErrStatusChanged
func (s *Service) Approve(ctx context.Context, id int64, actor domain.Identity) (*models.BookingResponse, error) {
	s.logger.Info("Approve: booking id=%d by user=%s", id, actor.Email)

	var approved *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, "Approve", id)
		if err != nil {
			return err
		}

		// Переход применяется к копии: прочитанное бронирование не меняется до подтверждения записи
		next := *booking
		if err := next.Approve(actor, s.timeProvider.Now()); err != nil {
			s.logger.Warn("Approve: booking id=%d refused: %v", id, err)
			return err
		}

		if err := s.checkSlotsFree(ctx, "Approve", &next); err != nil {
			return err
		}

		err = s.bookingRepo.TransitionStatus(ctx, id, domain.StatusPending, domain.StatusApproved, next.ApprovedAt)
		if err != nil {
			return s.transitionError("Approve", id, err)
		}

		approved = &next
		return nil
	})
	if err != nil {
		err = s.resolveRace(ctx, "Approve", id, domain.StatusPending, err)
		s.metrics.IncTransition("approve", resultLabel(err))
		return nil, err
	}

	s.metrics.IncTransition("approve", resultOK)
	s.publish(ctx, events.TypeBookingApproved, approved)
	s.logger.Info("Approve: booking id=%d approved", id)
	return models.FromDomainBooking(approved), nil
}

// Reject отклоняет бронирование
func (s *Service) Reject(ctx context.Context, id int64, actor domain.Identity) (*models.BookingResponse, error) {
	s.logger.Info("Reject: booking id=%d by user=%s", id, actor.Email)

	var rejected *domain.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, "Reject", id)
		if err != nil {
			return err
		}

		next := *booking
		if err := next.Reject(actor); err != nil {
			s.logger.Warn("Reject: booking id=%d refused: %v", id, err)
			return err
		}

		err = s.bookingRepo.TransitionStatus(ctx, id, domain.StatusPending, domain.StatusRejected, nil)
		if err != nil {
			return s.transitionError("Reject", id, err)
		}

		rejected = &next
		return nil
	})
	if err != nil {
		err = s.resolveRace(ctx, "Reject", id, domain.StatusPending, err)
		s.metrics.IncTransition("reject", resultLabel(err))
		return nil, err
	}

	s.metrics.IncTransition("reject", resultOK)
	s.publish(ctx, events.TypeBookingRejected, rejected)
	s.logger.Info("Reject: booking id=%d rejected", id)
	return models.FromDomainBooking(rejected), nil
}

// Cancel отменяет бронирование. Запись остается в истории со статусом cancelled
func (s *Service) Cancel(ctx context.Context, id int64, actor domain.Identity) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: booking id=%d by user=%s", id, actor.Email)

	var cancelled *domain.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, "Cancel", id)
		if err != nil {
			return err
		}

		next := *booking
		if err := next.Cancel(actor); err != nil {
			s.logger.Warn("Cancel: booking id=%d refused: %v", id, err)
			return err
		}

		if err := s.bookingRepo.TransitionStatus(ctx, id, booking.Status, domain.StatusCancelled, nil); err != nil {
			return s.transitionError("Cancel", id, err)
		}

		cancelled = &next
		return nil
	})
	if err != nil {
		s.metrics.IncTransition("cancel", resultLabel(err))
		return nil, err
	}

	s.metrics.IncTransition("cancel", resultOK)
	s.publish(ctx, events.TypeBookingCancelled, cancelled)
	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return models.FromDomainBooking(cancelled), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkSlotsFree проверяет, что слоты бронирования не заняты подтвержденными бронированиями
func (s *Service) checkSlotsFree(ctx context.Context, op string, booking *domain.Booking) error {
	taken, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		CourtID:  &booking.CourtID,
		Date:     &booking.Date,
		Statuses: domain.HoldingStatuses,
	})
	if err != nil {
		s.logger.Error("%s: failed to load bookings for court id=%d: %v", op, booking.CourtID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if overlap := domain.OverlappingSlots(booking.Slots, taken); len(overlap) > 0 {
		s.logger.Warn("%s: booking id=%d slots already taken: %s", op, booking.ID, strings.Join(overlap, ", "))
		return fmt.Errorf("%w: %s", ErrSlotUnavailable, strings.Join(overlap, ", "))
	}
	return nil
}

func (s *Service) transitionError(op string, id int64, err error) error {
	if errors.Is(err, bookingRepo.ErrStatusConflict) {
		s.logger.Warn("%s: booking id=%d changed concurrently", op, id)
		return ErrStatusChanged
	}
	s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// resolveRace перечитывает бронирование после сбоя транзакции.
// Если статус уже ушел из from, параллельный запрос успел раньше
func (s *Service) resolveRace(ctx context.Context, op string, id int64, from domain.BookingStatus, cause error) error {
	if !errors.Is(cause, ErrInternal) {
		return cause
	}

	current, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil || current.Status == from {
		return cause
	}

	s.logger.Warn("%s: booking id=%d already moved to %s", op, id, current.Status)
	return fmt.Errorf("%w: booking is already %s", ErrStatusChanged, current.Status)
}

// publish публикует событие; сбой брокера не отменяет переход
func (s *Service) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if err := s.publisher.PublishBooking(ctx, eventType, booking); err != nil {
		s.logger.Warn("publish: %v", err)
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidState):
		return resultConflict
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrValidation):
		return resultRejected
	default:
		return resultError
	}
}
