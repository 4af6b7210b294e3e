package list_blackout_dates

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

type BlackoutService interface {
	ListBlackoutDates(ctx context.Context) (*models.BlackoutListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
