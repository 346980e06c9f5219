package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/ptr"
)

// UseCase use case для получения доступных слотов корта
type UseCase struct {
	bookingRepo  BookingRepository
	courts       CourtProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, courts CourtProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courts:       courts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%d, date=%s", req.CourtID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courts.Get(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Бронирования корта на дату, которые держат или запрашивают слоты
	statuses := append([]domain.BookingStatus{domain.StatusPending}, domain.HoldingStatuses...)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		CourtID:  ptr.Ptr(court.ID),
		Date:     ptr.Ptr(date),
		Statuses: statuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings for court id=%d: %v", court.ID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Доступность по меткам слотов
	slots := buildSlots(courtLabels(court, bookings), bookings, date, now)

	uc.logger.Info("GetAvailableSlots: court id=%d on %s has %d slots", court.ID, date.Format(domain.DateFormat), len(slots))

	return &Response{
		Date:      date,
		CourtID:   court.ID,
		CourtName: court.DisplayName(),
		Slots:     slots,
	}, nil
}
