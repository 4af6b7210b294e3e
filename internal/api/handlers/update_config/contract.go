package update_config

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

type ConfigService interface {
	UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
