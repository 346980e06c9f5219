package courts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context) ([]*domain.Court, error)
	Create(ctx context.Context, c *domain.Court) (*domain.Court, error)
	Update(ctx context.Context, c *domain.Court) (*domain.Court, error)
	Delete(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
