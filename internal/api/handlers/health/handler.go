package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

// StatusResponse состояние сервиса
type StatusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /health - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "degraded", Database: "down"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok", Database: "up"})
}
