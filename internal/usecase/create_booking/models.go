package create_booking

import "github.com/m04kA/SMC-ClubBookingService/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	Requester domain.Identity // Автор бронирования из токена
	CourtID   int64           `validate:"gt=0"`
	Date      string          `validate:"required"` // "2025-10-15"
	Slots     []string        `validate:"required,min=1,max=24"`
	// Price цена, которую видел клиент (опционально). Расхождение с ценой корта блокирует создание
	Price *float64
}
