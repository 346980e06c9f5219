package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	// StatusConfirmed бронирование оплачено
	StatusConfirmed BookingStatus = "confirmed"
)

// validTransitions допустимые переходы статусов.
// Статус без записи в таблице терминальный
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusConfirmed, StatusCancelled},
}

// ParseBookingStatus разбирает статус из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusConfirmed:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
}

// CanTransitionTo проверяет, допустим ли переход в статус next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transitions are allowed from the status
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentNotPaid PaymentStatus = "not_paid"
	// PaymentUnpaid устаревшее значение, равнозначно not_paid
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// IsPaid returns true if the booking has been paid
func (p PaymentStatus) IsPaid() bool {
	return p == PaymentPaid
}

// Booking represents a court booking in the system
type Booking struct {
	ID        int64
	UserEmail string
	CourtID   int64
	CourtType string
	Date      time.Time
	Slots     []string

	// BasePrice цена корта, умноженная на количество слотов. Не меняется после создания
	BasePrice     float64
	Status        BookingStatus
	PaymentStatus PaymentStatus

	CouponUsed  *string
	PaidAmount  *float64
	PaymentDate *time.Time
	ApprovedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBooking собирает новое бронирование в статусе pending.
// Слоты очищаются от пустых значений и дубликатов с сохранением порядка
func NewBooking(requester Identity, court *Court, date time.Time, slots []string, now time.Time) (*Booking, error) {
	if requester.Email == "" {
		return nil, fmt.Errorf("%w: requester email is required", ErrValidation)
	}
	if !requester.Role.CanBook() {
		return nil, fmt.Errorf("%w: role %s cannot book", ErrForbidden, requester.Role)
	}
	if court == nil {
		return nil, fmt.Errorf("%w: court is required", ErrValidation)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if isDateInPast(date, now) {
		return nil, fmt.Errorf("%w: date %s is in the past", ErrValidation, date.Format(DateFormat))
	}

	normalized := NormalizeSlots(slots)
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", ErrValidation)
	}
	if len(normalized) > MaxSlotsPerBooking {
		return nil, fmt.Errorf("%w: too many slots, max %d", ErrValidation, MaxSlotsPerBooking)
	}
	for _, slot := range normalized {
		if !court.HasSlot(slot) {
			return nil, fmt.Errorf("%w: slot %q is not offered by court id=%d", ErrValidation, slot, court.ID)
		}
	}

	return &Booking{
		UserEmail:     requester.Email,
		CourtID:       court.ID,
		CourtType:     court.DisplayName(),
		Date:          dateOnly(date),
		Slots:         normalized,
		BasePrice:     court.Price * float64(len(normalized)),
		Status:        StatusPending,
		PaymentStatus: PaymentNotPaid,
	}, nil
}

// Approve переводит бронирование в approved. При ошибке бронирование не меняется
func (b *Booking) Approve(actor Identity, now time.Time) error {
	if !actor.Role.CanApprove() {
		return fmt.Errorf("%w: role %s cannot approve bookings", ErrForbidden, actor.Role)
	}
	if err := b.checkTransition(StatusApproved); err != nil {
		return err
	}

	approvedAt := now
	b.Status = StatusApproved
	b.ApprovedAt = &approvedAt
	return nil
}

// Reject переводит бронирование в rejected
func (b *Booking) Reject(actor Identity) error {
	if !actor.Role.CanApprove() {
		return fmt.Errorf("%w: role %s cannot reject bookings", ErrForbidden, actor.Role)
	}
	if err := b.checkTransition(StatusRejected); err != nil {
		return err
	}

	b.Status = StatusRejected
	return nil
}

// Cancel отменяет бронирование. Отменить может только автор до оплаты
func (b *Booking) Cancel(actor Identity) error {
	if !actor.Owns(b.UserEmail) {
		return fmt.Errorf("%w: only the requester can cancel the booking", ErrForbidden)
	}
	if b.PaymentStatus.IsPaid() {
		return fmt.Errorf("%w: booking is already paid", ErrInvalidState)
	}
	if err := b.checkTransition(StatusCancelled); err != nil {
		return err
	}

	b.Status = StatusCancelled
	return nil
}

// CanFinalizePayment проверяет, что бронирование можно оплатить
func (b *Booking) CanFinalizePayment() error {
	if b.PaymentStatus.IsPaid() {
		return fmt.Errorf("%w: booking is already paid", ErrInvalidState)
	}
	if b.Status != StatusApproved {
		return fmt.Errorf("%w: booking in status %s cannot be paid", ErrInvalidState, b.Status)
	}
	return nil
}

// MarkPaid фиксирует оплату: сумма, купон и дата оплаты больше не меняются
func (b *Booking) MarkPaid(amount float64, couponUsed *string, now time.Time) error {
	if err := b.CanFinalizePayment(); err != nil {
		return err
	}
	// Границы сравниваются в копейках: amount уже округлен, BasePrice нет
	paidMinor := MinorUnits(amount)
	if paidMinor < 0 || paidMinor > MinorUnits(b.BasePrice) {
		return fmt.Errorf("%w: paid amount %.2f outside [0, %.2f]", ErrValidation, amount, b.BasePrice)
	}

	paidAt := now
	paid := float64(paidMinor) / 100
	b.Status = StatusConfirmed
	b.PaymentStatus = PaymentPaid
	b.PaidAmount = &paid
	b.PaymentDate = &paidAt
	b.CouponUsed = couponUsed
	return nil
}

// IsHoldingSlots returns true if the booking occupies its court slots
func (b *Booking) IsHoldingSlots() bool {
	for _, s := range HoldingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

func (b *Booking) checkTransition(next BookingStatus) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move booking from %s to %s", ErrInvalidState, b.Status, next)
	}
	return nil
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	UserEmail *string         // Фильтр по автору (опционально)
	CourtID   *int64          // Фильтр по корту (опционально)
	Date      *time.Time      // Фильтр по дате (опционально)
	Statuses  []BookingStatus // Фильтр по статусам (пустой - все)
	Limit     uint64          // 0 - без ограничения
}

// NormalizeSlots убирает пустые и повторяющиеся слоты, сохраняя порядок
func NormalizeSlots(slots []string) []string {
	seen := make(map[string]struct{}, len(slots))
	result := make([]string, 0, len(slots))
	for _, slot := range slots {
		slot = strings.TrimSpace(slot)
		if slot == "" {
			continue
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		result = append(result, slot)
	}
	return result
}

// OverlappingSlots возвращает слоты из requested, занятые бронированиями taken
func OverlappingSlots(requested []string, taken []*Booking) []string {
	held := make(map[string]struct{})
	for _, b := range taken {
		if !b.IsHoldingSlots() {
			continue
		}
		for _, slot := range b.Slots {
			held[slot] = struct{}{}
		}
	}

	overlap := make([]string, 0)
	for _, slot := range requested {
		if _, ok := held[slot]; ok {
			overlap = append(overlap, slot)
		}
	}
	return overlap
}

// MinorUnits переводит сумму в минимальные единицы валюты (пайсы, центы)
func MinorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}

// dateOnly обнуляет время, оставляя календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return dateOnly(date).Before(today)
}
