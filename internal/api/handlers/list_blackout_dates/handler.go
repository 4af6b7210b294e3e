package list_blackout_dates

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service BlackoutService
	logger  Logger
}

func NewHandler(service BlackoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/blackout-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlackoutDates(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar/blackout-dates - Failed to list blackout dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar/blackout-dates - Blackout dates retrieved successfully: count=%d", len(result.BlackoutDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
