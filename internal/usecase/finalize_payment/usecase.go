package finalize_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-ClubBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/events"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-ClubBookingService/internal/integrations/razorpay"
	"github.com/m04kA/SMC-ClubBookingService/internal/pricing"
)

// Способ оплаты для бесплатных бронирований
const freePaymentMethod = "free"

// notifyTimeout ограничивает отправку чека после ответа клиенту
const notifyTimeout = 30 * time.Second

// UseCase use case оплаты подтвержденного бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	coupons      CouponCatalog
	paymentRepo  PaymentRepository
	verifier     PaymentVerifier
	publisher    EventPublisher
	mailer       ReceiptMailer
	renderer     ReceiptRenderer
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	// notified закрывается после отправки чека (для тестов)
	notified chan struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	coupons CouponCatalog,
	paymentRepo PaymentRepository,
	verifier PaymentVerifier,
	publisher EventPublisher,
	mailer ReceiptMailer,
	renderer ReceiptRenderer,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		coupons:      coupons,
		paymentRepo:  paymentRepo,
		verifier:     verifier,
		publisher:    publisher,
		mailer:       mailer,
		renderer:     renderer,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute оплачивает бронирование.
// Сумма пересчитывается на сервере и должна совпасть с суммой клиента и суммой транзакции.
// Запись оплаты защищена условием payment_status <> 'paid', повторная оплата невозможна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinalizePayment: booking id=%d by user=%s, amount=%.2f, coupon=%q",
		req.BookingID, req.Requester.Email, req.Amount, req.CouponCode)

	resp, err := uc.execute(ctx, req)
	if err != nil {
		uc.metrics.IncTransition("pay", resultLabel(err))
		return nil, err
	}

	uc.metrics.IncTransition("pay", "ok")
	uc.metrics.IncPayment(resp.Payment.CouponUsed != nil)
	return resp, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FinalizePayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронирование: автор и состояние
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !req.Requester.Owns(booking.UserEmail) {
		uc.logger.Warn("FinalizePayment: user=%s is not the requester of booking id=%d", req.Requester.Email, booking.ID)
		return nil, ErrAccessDenied
	}
	if err := booking.CanFinalizePayment(); err != nil {
		uc.logger.Warn("FinalizePayment: booking id=%d: %v", booking.ID, err)
		return nil, err
	}

	// 3. Расчет суммы по каталогу купонов
	now := uc.timeProvider.Now()
	quote, err := uc.quote(ctx, booking, req.CouponCode, now)
	if err != nil {
		return nil, err
	}
	finalAmount := pricing.RoundMoney(quote.FinalAmount)

	// 4. Сумма клиента должна совпасть с рассчитанной
	if !pricing.AmountsEqual(req.Amount, finalAmount) {
		uc.logger.Warn("FinalizePayment: booking id=%d client amount %.2f != computed %.2f",
			booking.ID, req.Amount, finalAmount)
		return nil, fmt.Errorf("%w: expected %.2f, got %.2f", ErrAmountMismatch, finalAmount, req.Amount)
	}

	// 5. Транзакция в платежной системе на ту же сумму
	payment, err := uc.buildPayment(ctx, req, booking, quote, finalAmount, now)
	if err != nil {
		return nil, err
	}

	// 6. Запись оплаты и платежа в одной транзакции
	paid := *booking
	if err := paid.MarkPaid(finalAmount, quote.CouponCode(), now); err != nil {
		uc.logger.Warn("FinalizePayment: booking id=%d: %v", booking.ID, err)
		return nil, err
	}

	var created *domain.Payment
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.MarkPaid(txCtx, &paid); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				uc.logger.Warn("FinalizePayment: booking id=%d was paid or changed concurrently", booking.ID)
				return ErrAlreadyPaid
			}
			uc.logger.Error("FinalizePayment: failed to mark booking id=%d paid: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to mark booking paid: %v", ErrInternal, err)
		}

		p, err := uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrDuplicatePayment) {
				uc.logger.Warn("FinalizePayment: payment for booking id=%d already recorded", booking.ID)
				return ErrAlreadyPaid
			}
			uc.logger.Error("FinalizePayment: failed to record payment for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
		}

		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("FinalizePayment: booking id=%d paid, payment id=%d, amount=%.2f, transaction=%s",
		paid.ID, created.ID, created.Amount, created.TransactionID)

	// 7. Побочные эффекты после коммита
	if err := uc.publisher.PublishBooking(ctx, events.TypeBookingPaid, &paid); err != nil {
		uc.logger.Warn("FinalizePayment: %v", err)
	}
	go uc.sendReceipt(context.WithoutCancel(ctx), created, &paid)

	return &Response{Booking: &paid, Payment: created}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("FinalizePayment: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("FinalizePayment: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

func (uc *UseCase) quote(ctx context.Context, booking *domain.Booking, code string, now time.Time) (pricing.Quote, error) {
	var catalog []domain.Coupon
	if code != "" {
		var err error
		catalog, err = uc.coupons.List(ctx, true)
		if err != nil {
			uc.logger.Error("FinalizePayment: failed to load coupons: %v", err)
			return pricing.Quote{}, fmt.Errorf("%w: failed to load coupons: %v", ErrInternal, err)
		}
	}

	quote, err := pricing.ApplyCoupon(booking.BasePrice, code, catalog, now)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := pricing.RequireCoupon(code, quote); err != nil {
		uc.logger.Warn("FinalizePayment: coupon %q not applicable to booking id=%d", code, booking.ID)
		return pricing.Quote{}, ErrInvalidCoupon
	}
	return quote, nil
}

// buildPayment подтверждает транзакцию и собирает запись о платеже.
// Нулевая сумма не проходит через платежную систему
func (uc *UseCase) buildPayment(
	ctx context.Context,
	req *Request,
	booking *domain.Booking,
	quote pricing.Quote,
	finalAmount float64,
	now time.Time,
) (*domain.Payment, error) {
	payment := &domain.Payment{
		BookingID:      booking.ID,
		UserEmail:      booking.UserEmail,
		Amount:         finalAmount,
		OriginalAmount: pricing.RoundMoney(booking.BasePrice),
		Discount:       pricing.RoundMoney(booking.BasePrice - finalAmount),
		CouponUsed:     quote.CouponCode(),
		Status:         domain.PaymentRecordCompleted,
		PaymentDate:    now,
	}

	if pricing.ToMinorUnits(finalAmount) == 0 {
		payment.TransactionID = domain.FreeTransactionPrefix + uuid.NewString()
		payment.PaymentMethod = freePaymentMethod
		uc.logger.Info("FinalizePayment: booking id=%d is free, skipping processor", booking.ID)
		return payment, nil
	}

	if req.TransactionID == "" {
		return nil, fmt.Errorf("%w: transaction id is required", ErrInvalidInput)
	}

	tx, err := uc.verifier.Verify(ctx, razorpay.VerifyRequest{
		PaymentID:     req.TransactionID,
		OrderID:       req.OrderID,
		Signature:     req.Signature,
		ExpectedMinor: pricing.ToMinorUnits(finalAmount),
		ClaimedMethod: req.PaymentMethod,
		ClaimedLast4:  req.CardLastFour,
	})
	if err != nil {
		return nil, uc.verifyError(booking.ID, err)
	}

	payment.TransactionID = tx.ID
	payment.PaymentMethod = tx.PaymentMethod()
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = req.PaymentMethod
	}
	if tx.CardLast4 != "" {
		last4 := tx.CardLast4
		payment.CardLastFour = &last4
	}
	return payment, nil
}

func (uc *UseCase) verifyError(bookingID int64, err error) error {
	switch {
	case errors.Is(err, domain.ErrPricingMismatch):
		uc.logger.Warn("FinalizePayment: booking id=%d processor amount mismatch: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrAmountMismatch, err)
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, razorpay.ErrInternal):
		uc.logger.Error("FinalizePayment: booking id=%d processor unavailable: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrProcessorUnavailable, err)
	default:
		uc.logger.Warn("FinalizePayment: booking id=%d payment not confirmed: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}
}

// sendReceipt отправляет чек. Ошибки только логируются
func (uc *UseCase) sendReceipt(ctx context.Context, payment *domain.Payment, booking *domain.Booking) {
	defer func() {
		if uc.notified != nil {
			close(uc.notified)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	pdf, err := uc.renderer.RenderReceipt(payment, booking)
	if err != nil {
		uc.logger.Warn("FinalizePayment: receipt for payment id=%d not rendered: %v", payment.ID, err)
	}

	if err := uc.mailer.SendReceipt(ctx, mailer.Receipt{Booking: booking, Payment: payment, PDF: pdf}); err != nil {
		uc.logger.Warn("FinalizePayment: receipt for payment id=%d not sent: %v", payment.ID, err)
		return
	}
	uc.logger.Info("FinalizePayment: receipt for payment id=%d sent to %s", payment.ID, payment.UserEmail)
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrPricingMismatch):
		return "mismatch"
	case errors.Is(err, domain.ErrPaymentDeclined):
		return "declined"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrNotFound):
		return "rejected"
	default:
		return "error"
	}
}
