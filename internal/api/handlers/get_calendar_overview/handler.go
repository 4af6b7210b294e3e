package get_calendar_overview

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getCalendarOverview "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_calendar_overview"
)

const (
	msgMissingPeriod  = "параметры startDate и endDate обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod  = "некорректный период"
	msgConfigNotFound = "расписание не настроено"
)

type Handler struct {
	useCase GetCalendarOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/overview
// Query params: startDate, endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startStr, endStr := query.Get("startDate"), query.Get("endDate")

	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /calendar/overview - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /calendar/overview - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarOverview.ErrInvalidInput):
			h.logger.Warn("GET /calendar/overview - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getCalendarOverview.ErrConfigNotFound):
			h.logger.Warn("GET /calendar/overview - Availability config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("GET /calendar/overview - Failed to build overview: %s..%s, error=%v", startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/overview - Overview built: %s..%s, appointments=%d",
		startStr, endStr, result.TotalAppointments)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
