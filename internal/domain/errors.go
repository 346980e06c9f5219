package domain

import "errors"

// Базовые виды ошибок. Ошибки пакетов оборачивают один из них через %w,
// чтобы API слой мог сопоставить ответ по errors.Is
var (
	// ErrValidation некорректные входные данные
	ErrValidation = errors.New("validation error")

	// ErrInvalidState операция недопустима в текущем состоянии бронирования
	ErrInvalidState = errors.New("invalid state")

	// ErrForbidden у вызывающего нет прав на операцию
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound объект не найден
	ErrNotFound = errors.New("not found")

	// ErrPricingMismatch сумма к оплате не совпадает с рассчитанной
	ErrPricingMismatch = errors.New("pricing mismatch")

	// ErrConflict конфликт с уже существующими данными (занятый слот, дубликат купона)
	ErrConflict = errors.New("conflict")

	// ErrPaymentDeclined платежная система не подтвердила оплату
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrUnavailable внешняя зависимость не ответила вовремя, запрос можно повторить
	ErrUnavailable = errors.New("temporarily unavailable")
)
