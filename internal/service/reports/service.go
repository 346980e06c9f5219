package reports

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// Service формирует документы: PDF-чеки и выгрузку бронирований
type Service struct {
	payments    PaymentGetter
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(payments PaymentGetter, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{payments: payments, bookingRepo: bookingRepo, logger: logger}
}

// Receipt возвращает PDF-чек по платежу для владельца или администратора
func (s *Service) Receipt(ctx context.Context, paymentID int64, caller domain.Identity) ([]byte, error) {
	payment, err := s.payments.Get(ctx, paymentID, caller)
	if err != nil {
		return nil, err
	}

	// Чек формируется и без данных бронирования
	booking, err := s.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		s.logger.Warn("Receipt: booking id=%d for payment id=%d unavailable: %v", payment.BookingID, paymentID, err)
		booking = nil
	}

	pdf, err := s.RenderReceipt(payment, booking)
	if err != nil {
		s.logger.Error("Receipt: payment id=%d: %v", paymentID, err)
		return nil, err
	}
	return pdf, nil
}

// RenderReceipt формирует PDF-чек
func (s *Service) RenderReceipt(payment *domain.Payment, booking *domain.Booking) ([]byte, error) {
	return RenderReceipt(payment, booking)
}

// ExportBookings выгружает бронирования в XLSX. Пустой statuses - все статусы
func (s *Service) ExportBookings(ctx context.Context, statuses []string, actor domain.Identity) ([]byte, error) {
	if !actor.Role.CanViewAllBookings() {
		s.logger.Warn("ExportBookings: access denied for user=%s", actor.Email)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingsFilter{}
	for _, raw := range statuses {
		status, err := domain.ParseBookingStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ExportBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportBookings - repository error: %v", ErrInternal, err)
	}

	data, err := RenderBookings(bookings)
	if err != nil {
		s.logger.Error("ExportBookings: %v", err)
		return nil, err
	}

	s.logger.Info("ExportBookings: exported %d bookings for user=%s", len(bookings), actor.Email)
	return data, nil
}
