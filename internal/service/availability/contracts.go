package availability

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации доступности
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.AvailabilityConfig, error)
	Create(ctx context.Context, config *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error)
	Update(ctx context.Context, config *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error)
}

// BlackoutRepository интерфейс репозитория blackout-дат
type BlackoutRepository interface {
	GetAll(ctx context.Context) ([]domain.BlackoutDate, error)
	Create(ctx context.Context, blackout *domain.BlackoutDate) (*domain.BlackoutDate, error)
	Delete(ctx context.Context, id int64) error
}

// Cache сбрасывает закэшированные конфигурацию и blackout-даты
type Cache interface {
	Invalidate(ctx context.Context)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
