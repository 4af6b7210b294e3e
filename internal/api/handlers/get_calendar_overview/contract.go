package get_calendar_overview

import (
	"context"

	getCalendarOverview "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_calendar_overview"
)

type GetCalendarOverviewUseCase interface {
	Execute(ctx context.Context, req *getCalendarOverview.Request) (*getCalendarOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
