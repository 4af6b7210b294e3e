package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID    = "некорректный ID записи"
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgNotFound                = "запись не найдена"
	msgSlotNotAvailable        = "выбранный временной слот недоступен"
	msgInvalidStatusTransition = "недопустимая смена статуса записи"
	msgConfigNotFound          = "расписание не настроено"
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

// Handle PUT /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appointment, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrSlotNotAvailable):
			h.logger.Warn("PUT /appointments/{id} - Slot not available: id=%d", id)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, appointments.ErrInvalidStatusTransition):
			h.logger.Warn("PUT /appointments/{id} - Invalid status transition: id=%d", id)
			handlers.RespondConflict(w, msgInvalidStatusTransition)

		case errors.Is(err, appointments.ErrConfigNotFound):
			h.logger.Warn("PUT /appointments/{id} - Availability config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: id=%d, datetime=%s, status=%s",
		id, appointment.Datetime, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
