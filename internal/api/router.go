package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
)

// Handlers обработчики всех маршрутов API
type Handlers struct {
	Health http.HandlerFunc

	GetAvailableSlots   http.HandlerFunc
	GetCalendarOverview http.HandlerFunc

	ListAssistantTools   http.HandlerFunc
	ExecuteAssistantTool http.HandlerFunc

	ListServices  http.HandlerFunc
	CreateService http.HandlerFunc
	UpdateService http.HandlerFunc
	DeleteService http.HandlerFunc

	GetConfig          http.HandlerFunc
	UpdateConfig       http.HandlerFunc
	ListBlackoutDates  http.HandlerFunc
	AddBlackoutDate    http.HandlerFunc
	RemoveBlackoutDate http.HandlerFunc

	ListAppointments  http.HandlerFunc
	CreateAppointment http.HandlerFunc
	GetAppointment    http.HandlerFunc
	UpdateAppointment http.HandlerFunc
	CancelAppointment http.HandlerFunc
}

// RegisterRoutes регистрирует маршруты /api/v1 на роутере.
// Все, что создает или меняет записи, требует API-ключ.
func RegisterRoutes(r *mux.Router, h Handlers, apiKey string) {
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Свободные слоты на дату и сводка по периоду
	api.HandleFunc("/calendar/availability", h.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/calendar/overview", h.GetCalendarOverview).Methods(http.MethodGet)

	// Описания инструментов ассистента и каталог услуг только читаются
	api.HandleFunc("/assistant/tools", h.ListAssistantTools).Methods(http.MethodGet)
	api.HandleFunc("/services", h.ListServices).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <api key>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(apiKey))

	// --- Инструменты ассистента: bookAppointment создает запись ---
	protected.HandleFunc("/assistant/tools/{toolName}", h.ExecuteAssistantTool).Methods(http.MethodPost)

	// --- Каталог услуг ---
	protected.HandleFunc("/services", h.CreateService).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id:[0-9]+}", h.UpdateService).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id:[0-9]+}", h.DeleteService).Methods(http.MethodDelete)

	// --- Настройки календаря ---
	protected.HandleFunc("/calendar/config", h.GetConfig).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/config", h.UpdateConfig).Methods(http.MethodPut)
	protected.HandleFunc("/calendar/blackout-dates", h.ListBlackoutDates).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/blackout-dates", h.AddBlackoutDate).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/blackout-dates/{id:[0-9]+}", h.RemoveBlackoutDate).Methods(http.MethodDelete)

	// --- Записи ---
	protected.HandleFunc("/appointments", h.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", h.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}", h.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", h.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id:[0-9]+}", h.CancelAppointment).Methods(http.MethodDelete)
}
