package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgCannotCancel         = "запись не может быть отменена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{id}
// Запись не удаляется физически, а переводится в статус cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appointment, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("DELETE /appointments/{id} - Cannot cancel appointment: id=%d", id)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to cancel appointment: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled successfully: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
