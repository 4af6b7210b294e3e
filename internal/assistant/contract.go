package assistant

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// SlotsUseCase поиск свободных слотов на день
type SlotsUseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BookingUseCase создание записи
type BookingUseCase interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
