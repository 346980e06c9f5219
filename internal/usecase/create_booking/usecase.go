package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-ClubBookingService/internal/pricing"
	"github.com/m04kA/SMC-ClubBookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	courts       CourtProvider
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courts CourtProvider,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courts:       courts,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости слотов и вставка идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: user=%s, court=%d, date=%s, slots=%v",
		req.Requester.Email, req.CourtID, req.Date, req.Slots)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courts.Get(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Собираем бронирование: права, дата, слоты, цена
	booking, err := domain.NewBooking(req.Requester, court, date, req.Slots, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: booking rejected: %v", err)
		return nil, err
	}

	// 4. Цена клиента должна совпасть с ценой сервера
	if req.Price != nil && !pricing.AmountsEqual(*req.Price, booking.BasePrice) {
		uc.logger.Warn("CreateBooking: client price %.2f != court price %.2f", *req.Price, booking.BasePrice)
		return nil, fmt.Errorf("%w: expected %.2f", ErrPriceMismatch, pricing.RoundMoney(booking.BasePrice))
	}

	var result *domain.Booking

	// 5. Проверяем слоты и сохраняем в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Бронирования, удерживающие слоты на эту дату, с блокировкой (FOR UPDATE)
		taken, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			CourtID:  &booking.CourtID,
			Date:     &booking.Date,
			Statuses: domain.HoldingStatuses,
		})
		if errors.Is(err, txmanager.ErrSerialization) {
			return err
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Pending-бронирования друг друга не блокируют
		if overlap := domain.OverlappingSlots(booking.Slots, taken); len(overlap) > 0 {
			uc.logger.Warn("CreateBooking: slots already taken: %s", strings.Join(overlap, ", "))
			return fmt.Errorf("%w: %s", ErrSlotUnavailable, strings.Join(overlap, ", "))
		}

		// 5.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if errors.Is(err, txmanager.ErrSerialization) {
			return err
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if errors.Is(err, txmanager.ErrSerialization) {
		uc.logger.Warn("CreateBooking: serialization conflict on court id=%d: %v", booking.CourtID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingContended, err)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.publisher.PublishBooking(ctx, events.TypeBookingCreated, result); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return result, nil
}
