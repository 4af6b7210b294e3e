package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDatetime    = "некорректный формат времени записи, ожидается YYYY-MM-DD HH:mm"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgConfigNotFound     = "расписание не настроено"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid datetime %q: %v", req.Datetime, err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: datetime=%s", useCaseReq.StartsAt)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrConfigNotFound):
			h.logger.Warn("POST /appointments - Availability config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: datetime=%s, error=%v",
				useCaseReq.StartsAt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%d, datetime=%s",
		result.ID, result.StartsAt)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
