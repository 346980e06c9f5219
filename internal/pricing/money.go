package pricing

import (
	"math"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// RoundMoney округляет сумму до двух знаков. Применяется один раз при сохранении или выводе
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// AmountsEqual сравнивает суммы после округления до копеек
func AmountsEqual(a, b float64) bool {
	return ToMinorUnits(a) == ToMinorUnits(b)
}

// ToMinorUnits переводит сумму в минимальные единицы валюты (пайсы, центы)
func ToMinorUnits(v float64) int64 {
	return domain.MinorUnits(v)
}

// FromMinorUnits переводит минимальные единицы валюты обратно в сумму
func FromMinorUnits(v int64) float64 {
	return float64(v) / 100
}
