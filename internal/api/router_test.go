package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

const testAPIKey = "secret-key"

// recordingHandlers подставляет во все маршруты обработчик, отвечающий 200 и запоминающий вызов
func recordingHandlers(called *[]string) Handlers {
	stub := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			*called = append(*called, name)
			w.WriteHeader(http.StatusOK)
		}
	}

	return Handlers{
		Health:               stub("Health"),
		GetAvailableSlots:    stub("GetAvailableSlots"),
		GetCalendarOverview:  stub("GetCalendarOverview"),
		ListAssistantTools:   stub("ListAssistantTools"),
		ExecuteAssistantTool: stub("ExecuteAssistantTool"),
		ListServices:         stub("ListServices"),
		CreateService:        stub("CreateService"),
		UpdateService:        stub("UpdateService"),
		DeleteService:        stub("DeleteService"),
		GetConfig:            stub("GetConfig"),
		UpdateConfig:         stub("UpdateConfig"),
		ListBlackoutDates:    stub("ListBlackoutDates"),
		AddBlackoutDate:      stub("AddBlackoutDate"),
		RemoveBlackoutDate:   stub("RemoveBlackoutDate"),
		ListAppointments:     stub("ListAppointments"),
		CreateAppointment:    stub("CreateAppointment"),
		GetAppointment:       stub("GetAppointment"),
		UpdateAppointment:    stub("UpdateAppointment"),
		CancelAppointment:    stub("CancelAppointment"),
	}
}

func serve(r *mux.Router, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterRoutes_ToolExecutionRequiresAPIKey(t *testing.T) {
	var called []string
	r := mux.NewRouter()
	RegisterRoutes(r, recordingHandlers(&called), testAPIKey)

	rec := serve(r, http.MethodPost, "/api/v1/assistant/tools/bookAppointment", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(r, http.MethodPost, "/api/v1/assistant/tools/bookAppointment", "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, called)

	rec = serve(r, http.MethodPost, "/api/v1/assistant/tools/bookAppointment", testAPIKey)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ExecuteAssistantTool"}, called)
}

func TestRegisterRoutes_Access(t *testing.T) {
	tests := []struct {
		method  string
		path    string
		handler string
		public  bool
	}{
		{http.MethodGet, "/api/v1/health", "Health", true},
		{http.MethodGet, "/api/v1/calendar/availability?date=2025-01-06", "GetAvailableSlots", true},
		{http.MethodGet, "/api/v1/calendar/overview?startDate=2025-01-06&endDate=2025-01-12", "GetCalendarOverview", true},
		{http.MethodGet, "/api/v1/assistant/tools", "ListAssistantTools", true},
		{http.MethodGet, "/api/v1/services", "ListServices", true},
		{http.MethodPost, "/api/v1/services", "CreateService", false},
		{http.MethodPut, "/api/v1/services/3", "UpdateService", false},
		{http.MethodDelete, "/api/v1/services/3", "DeleteService", false},
		{http.MethodGet, "/api/v1/calendar/config", "GetConfig", false},
		{http.MethodPut, "/api/v1/calendar/config", "UpdateConfig", false},
		{http.MethodGet, "/api/v1/calendar/blackout-dates", "ListBlackoutDates", false},
		{http.MethodPost, "/api/v1/calendar/blackout-dates", "AddBlackoutDate", false},
		{http.MethodDelete, "/api/v1/calendar/blackout-dates/1", "RemoveBlackoutDate", false},
		{http.MethodGet, "/api/v1/appointments", "ListAppointments", false},
		{http.MethodPost, "/api/v1/appointments", "CreateAppointment", false},
		{http.MethodGet, "/api/v1/appointments/5", "GetAppointment", false},
		{http.MethodPut, "/api/v1/appointments/5", "UpdateAppointment", false},
		{http.MethodDelete, "/api/v1/appointments/5", "CancelAppointment", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var called []string
			r := mux.NewRouter()
			RegisterRoutes(r, recordingHandlers(&called), testAPIKey)

			anonymous := serve(r, tt.method, tt.path, "")
			if tt.public {
				assert.Equal(t, http.StatusOK, anonymous.Code)
			} else {
				assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
			}

			called = nil
			authorized := serve(r, tt.method, tt.path, testAPIKey)
			assert.Equal(t, http.StatusOK, authorized.Code)
			assert.Equal(t, []string{tt.handler}, called)
		})
	}
}
