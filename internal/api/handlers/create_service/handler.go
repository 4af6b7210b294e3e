package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid data: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrServiceExists):
			h.logger.Warn("POST /services - Service already exists: name=%q", req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /services - Failed to create service: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
