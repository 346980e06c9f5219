package get_available_slots

import (
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClubBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	CourtID   int64           `json:"courtId"`
	CourtName string          `json:"courtName"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота корта
type AvailableSlot struct {
	Label           string `json:"label"`
	Available       bool   `json:"available"`
	PendingRequests int    `json:"pendingRequests"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Label:           slot.Label,
			Available:       slot.Available,
			PendingRequests: slot.PendingRequests,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		CourtID:   resp.CourtID,
		CourtName: resp.CourtName,
		Slots:     slots,
	}
}
