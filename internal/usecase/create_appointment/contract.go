package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
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

// ServiceCatalog источник услуг каталога; длительность услуги задает длительность записи
type ServiceCatalog interface {
	GetActiveByName(ctx context.Context, name string) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий о записях
type EventPublisher interface {
	AppointmentCreated(ctx context.Context, appt *domain.Appointment) error
}

// Metrics учет исходов создания записи
type Metrics interface {
	ObserveAppointmentCreate(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
