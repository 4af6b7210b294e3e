package execute_assistant_tool

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/assistant"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownTool        = "неизвестный инструмент"
	msgInvalidArguments   = "некорректные аргументы инструмента"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgConfigNotFound     = "расписание не настроено"
)

type Handler struct {
	executor ToolExecutor
	logger   Logger
}

func NewHandler(executor ToolExecutor, logger Logger) *Handler {
	return &Handler{
		executor: executor,
		logger:   logger,
	}
}

// Handle POST /api/v1/assistant/tools/{toolName}
// Тело запроса - JSON-объект аргументов инструмента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	toolName := mux.Vars(r)["toolName"]

	var args json.RawMessage
	if err := handlers.DecodeJSON(r, &args); err != nil {
		h.logger.Warn("POST /assistant/tools/{name} - Invalid request body: tool=%s, error=%v", toolName, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.executor.Execute(r.Context(), toolName, args)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrUnknownTool):
			h.logger.Warn("POST /assistant/tools/{name} - Unknown tool: %s", toolName)
			handlers.RespondNotFound(w, msgUnknownTool)

		case errors.Is(err, assistant.ErrInvalidArguments),
			errors.Is(err, getAvailableSlots.ErrInvalidInput),
			errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /assistant/tools/{name} - Invalid arguments: tool=%s, error=%v", toolName, err)
			handlers.RespondBadRequest(w, msgInvalidArguments)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /assistant/tools/{name} - Slot not available: tool=%s", toolName)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, getAvailableSlots.ErrConfigNotFound),
			errors.Is(err, createAppointment.ErrConfigNotFound):
			h.logger.Warn("POST /assistant/tools/{name} - Availability config not found: tool=%s", toolName)
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("POST /assistant/tools/{name} - Tool execution failed: tool=%s, error=%v", toolName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assistant/tools/{name} - Tool executed successfully: tool=%s", toolName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
