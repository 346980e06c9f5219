package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CourtID int64  // ID корта
	Date    string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со списком слотов корта на дату
type Response struct {
	Date      time.Time
	CourtID   int64
	CourtName string
	Slots     []domain.AvailableSlot
}
