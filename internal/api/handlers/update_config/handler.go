package update_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "расписание не настроено"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/calendar/config
// Если активной конфигурации нет, она создается (weeklySchedule обязателен)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := h.service.UpdateConfig(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /calendar/config - Invalid data: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, availability.ErrConfigNotFound):
			h.logger.Warn("PUT /calendar/config - Config not found during update")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /calendar/config - Failed to update config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/config - Config updated successfully: config_id=%d, slot_step=%d",
		cfg.ID, cfg.SlotStepMinutes)
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
