package add_blackout_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAlreadyExists      = "дата уже добавлена в список нерабочих"
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

// Handle POST /api/v1/calendar/blackout-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/blackout-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddBlackoutDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /calendar/blackout-dates - Invalid data: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, availability.ErrBlackoutExists):
			h.logger.Warn("POST /calendar/blackout-dates - Blackout date already exists: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /calendar/blackout-dates - Failed to add blackout date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/blackout-dates - Blackout date added successfully: id=%d, date=%s, recurring=%t",
		result.ID, result.Date, result.IsRecurring)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
