package update_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "услуга не найдена"
	msgAlreadyExists      = "услуга с таким названием уже существует"
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

// Handle PUT /api/v1/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid data: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrServiceExists):
			h.logger.Warn("PUT /services/{id} - Service name already taken: id=%d", id)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated successfully: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
