package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ConfigRepository интерфейс источника активной конфигурации доступности
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.AvailabilityConfig, error)
}

// BlackoutRepository интерфейс источника blackout-дат
type BlackoutRepository interface {
	GetAll(ctx context.Context) ([]domain.BlackoutDate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
