package list_assistant_tools

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/assistant"
)

// ToolsResponse описания инструментов для function calling
type ToolsResponse struct {
	Tools []assistant.Tool `json:"tools"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/assistant/tools
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ToolsResponse{Tools: assistant.Tools()})
}
