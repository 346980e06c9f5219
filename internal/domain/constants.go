package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения на входные данные
const (
	MaxSlotsPerBooking   = 24
	MinCouponCodeLength  = 3
	MaxCouponCodeLength  = 32
	MaxPercentageValue   = 100
	MaxDescriptionLength = 500
)

// HoldingStatuses статусы, при которых бронирование занимает слоты корта.
// Ожидающие бронирования слоты не держат: конфликт решается при одобрении
var HoldingStatuses = []BookingStatus{
	StatusApproved,
	StatusConfirmed,
}

// ActiveStatuses статусы незавершенных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}
