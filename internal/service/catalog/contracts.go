package catalog

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	List(ctx context.Context, includeInactive bool) ([]*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Deactivate(ctx context.Context, id int64) error
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
