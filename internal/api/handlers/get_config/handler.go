package get_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability"
)

const (
	msgNotFound = "расписание не настроено"
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

// Handle GET /api/v1/calendar/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetActiveConfig(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrConfigNotFound):
			h.logger.Warn("GET /calendar/config - Active config not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /calendar/config - Failed to get config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/config - Config retrieved successfully: config_id=%d", cfg.ID)
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
