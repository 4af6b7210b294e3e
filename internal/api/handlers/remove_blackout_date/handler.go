package remove_blackout_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability"
)

const (
	msgInvalidBlackoutID = "некорректный ID нерабочей даты"
	msgNotFound          = "нерабочая дата не найдена"
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

// Handle DELETE /api/v1/calendar/blackout-dates/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /calendar/blackout-dates/{id} - Invalid blackout ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBlackoutID)
		return
	}

	if err := h.service.RemoveBlackoutDate(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, availability.ErrBlackoutNotFound):
			h.logger.Warn("DELETE /calendar/blackout-dates/{id} - Blackout date not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /calendar/blackout-dates/{id} - Failed to remove blackout date: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /calendar/blackout-dates/{id} - Blackout date removed successfully: id=%d", id)
	handlers.RespondNoContent(w)
}
