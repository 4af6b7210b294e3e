package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgNotFound         = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deactivated successfully: id=%d", id)
	handlers.RespondNoContent(w)
}
