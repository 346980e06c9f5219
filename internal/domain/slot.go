package domain

// AvailableSlot represents a court slot on a date and whether it can still be booked
type AvailableSlot struct {
	Label     string
	Available bool
	// PendingRequests количество ожидающих заявок на слот, которые его еще не держат
	PendingRequests int
}

// IsContested returns true if the slot is free but already requested by someone
func (s *AvailableSlot) IsContested() bool {
	return s.Available && s.PendingRequests > 0
}
