package create_booking

import (
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-ClubBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID int64    `json:"courtId"`
	Date    string   `json:"date"` // "2025-10-15"
	Slots   []string `json:"slots"`
	Price   *float64 `json:"price,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(requester domain.Identity) *createBooking.Request {
	return &createBooking.Request{
		Requester: requester,
		CourtID:   r.CourtID,
		Date:      r.Date,
		Slots:     r.Slots,
		Price:     r.Price,
	}
}
