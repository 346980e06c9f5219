package create_payment_order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClubBookingService/internal/pricing"
)

// UseCase use case создания заказа перед checkout.
// Сумма заказа рассчитывается на сервере тем же движком, что и при оплате
type UseCase struct {
	bookingRepo  BookingRepository
	coupons      CouponCatalog
	orders       OrderCreator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, coupons CouponCatalog, orders OrderCreator, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		coupons:      coupons,
		orders:       orders,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute рассчитывает сумму и создает заказ в платежной системе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	code := strings.TrimSpace(req.CouponCode)
	uc.logger.Info("CreatePaymentOrder: booking id=%d by user=%s, coupon=%q", req.BookingID, req.Requester.Email, code)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreatePaymentOrder: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreatePaymentOrder: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if !req.Requester.Owns(booking.UserEmail) {
		uc.logger.Warn("CreatePaymentOrder: user=%s is not the requester of booking id=%d", req.Requester.Email, booking.ID)
		return nil, ErrAccessDenied
	}
	if err := booking.CanFinalizePayment(); err != nil {
		uc.logger.Warn("CreatePaymentOrder: booking id=%d: %v", booking.ID, err)
		return nil, err
	}

	quote, err := uc.quote(ctx, booking, code, uc.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	amount := pricing.RoundMoney(quote.FinalAmount)
	resp := &Response{
		BookingID:   booking.ID,
		KeyID:       uc.orders.KeyID(),
		AmountMinor: pricing.ToMinorUnits(amount),
		Amount:      amount,
		BasePrice:   pricing.RoundMoney(booking.BasePrice),
		Discount:    pricing.RoundMoney(booking.BasePrice - amount),
		CouponCode:  quote.CouponCode(),
	}

	if resp.AmountMinor == 0 {
		resp.Free = true
		uc.logger.Info("CreatePaymentOrder: booking id=%d is free, no order created", booking.ID)
		return resp, nil
	}

	order, err := uc.orders.CreateOrder(ctx, resp.AmountMinor, fmt.Sprintf("booking_%d", booking.ID))
	if err != nil {
		uc.logger.Error("CreatePaymentOrder: failed to create order for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
	}

	resp.OrderID = order.ID
	resp.Currency = order.Currency
	uc.logger.Info("CreatePaymentOrder: booking id=%d order id=%s amount=%d", booking.ID, order.ID, order.AmountMinor)
	return resp, nil
}

func (uc *UseCase) quote(ctx context.Context, booking *domain.Booking, code string, now time.Time) (pricing.Quote, error) {
	var catalog []domain.Coupon
	if code != "" {
		var err error
		catalog, err = uc.coupons.List(ctx, true)
		if err != nil {
			uc.logger.Error("CreatePaymentOrder: failed to load coupons: %v", err)
			return pricing.Quote{}, fmt.Errorf("%w: failed to load coupons: %v", ErrInternal, err)
		}
	}

	quote, err := pricing.ApplyCoupon(booking.BasePrice, code, catalog, now)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := pricing.RequireCoupon(code, quote); err != nil {
		uc.logger.Warn("CreatePaymentOrder: coupon %q not applicable to booking id=%d", code, booking.ID)
		return pricing.Quote{}, ErrInvalidCoupon
	}
	return quote, nil
}
