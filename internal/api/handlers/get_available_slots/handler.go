package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "дата обязательна"
	msgInvalidQuery   = "некорректные параметры: ожидается date=YYYY-MM-DD и целое duration"
	msgInvalidInput   = "некорректная длительность записи"
	msgConfigNotFound = "расписание не настроено"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/availability
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendar/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /calendar/availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /calendar/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrConfigNotFound):
			h.logger.Warn("GET /calendar/availability - Availability config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("GET /calendar/availability - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/availability - Slots retrieved successfully: date=%s, slots_count=%d",
		result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
