package appointments

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// ConfigRepository интерфейс источника активной конфигурации доступности
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.AvailabilityConfig, error)
}

// BlackoutRepository интерфейс источника blackout-дат
type BlackoutRepository interface {
	GetAll(ctx context.Context) ([]domain.BlackoutDate, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий об отмене записей
type EventPublisher interface {
	AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
