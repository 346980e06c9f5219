package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/payments/models"
)

// Service история платежей
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{paymentRepo: paymentRepo, logger: logger}
}

// List возвращает платежи вызывающего. Администратор может запросить платежи любого email или все
func (s *Service) List(ctx context.Context, req *models.ListPaymentsRequest, caller domain.Identity) (*models.PaymentListResponse, error) {
	filter := domain.PaymentsFilter{Limit: req.Limit}

	switch {
	case !caller.Role.CanViewAllBookings():
		email := caller.Email
		filter.UserEmail = &email
	case req.Email != nil && strings.TrimSpace(*req.Email) != "":
		email := strings.TrimSpace(*req.Email)
		filter.UserEmail = &email
	}

	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", caller.Email, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(payments), nil
}

// Get возвращает платеж владельцу или администратору
func (s *Service) Get(ctx context.Context, id int64, caller domain.Identity) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("Get: payment id=%d not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("Get: repository error for payment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if !caller.Owns(payment.UserEmail) && !caller.Role.CanViewAllBookings() {
		s.logger.Warn("Get: access denied for user=%s to payment id=%d", caller.Email, id)
		return nil, ErrAccessDenied
	}

	return payment, nil
}
