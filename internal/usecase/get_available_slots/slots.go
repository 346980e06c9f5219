package get_available_slots

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// slotStartLayout формат начала слота в метке "09:00-10:00"
const slotStartLayout = "15:04"

// buildSlots собирает доступность слотов корта по бронированиям на дату.
// Слот занят подтвержденным или оплаченным бронированием, ожидающие заявки только подсчитываются.
// Сегодняшние слоты, которые уже начались, недоступны
func buildSlots(labels []string, bookings []*domain.Booking, date, now time.Time) []domain.AvailableSlot {
	held := make(map[string]struct{})
	pending := make(map[string]int)
	for _, b := range bookings {
		for _, slot := range b.Slots {
			switch {
			case b.IsHoldingSlots():
				held[slot] = struct{}{}
			case b.Status == domain.StatusPending:
				pending[slot]++
			}
		}
	}

	result := make([]domain.AvailableSlot, 0, len(labels))
	for _, label := range labels {
		_, taken := held[label]
		result = append(result, domain.AvailableSlot{
			Label:           label,
			Available:       !taken && !hasStarted(label, date, now),
			PendingRequests: pending[label],
		})
	}
	return result
}

// courtLabels метки слотов корта. Если корт их не объявляет, берутся метки из бронирований
func courtLabels(court *domain.Court, bookings []*domain.Booking) []string {
	if len(court.Slots) > 0 {
		return court.Slots
	}

	labels := make([]string, 0)
	for _, b := range bookings {
		labels = append(labels, b.Slots...)
	}
	return domain.NormalizeSlots(labels)
}

// hasStarted проверяет, что слот сегодняшнего дня уже начался.
// Метки без разбираемого времени начала не отсекаются
func hasStarted(label string, date, now time.Time) bool {
	if !isSameDay(date, now) {
		return false
	}

	start, _, _ := strings.Cut(label, "-")
	t, err := time.Parse(slotStartLayout, strings.TrimSpace(start))
	if err != nil {
		return false
	}

	y, m, d := now.Date()
	slotStart := time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, now.Location())
	return !now.Before(slotStart)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}
