package update_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func put(svc *mockService, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, path, strings.NewReader(body)))
	return rec
}

func TestHandle_Reschedule(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(req *models.UpdateRequest) bool {
		return req.Datetime != nil && *req.Datetime == "2025-01-07 11:00" && req.Status == nil
	})).Return(&models.AppointmentResponse{ID: 5, Datetime: "2025-01-07 11:00", Status: "confirmed"}, nil)

	rec := put(svc, "/api/v1/appointments/5", `{"datetime":"2025-01-07 11:00"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"datetime":"2025-01-07 11:00"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		svcErr error
		status int
	}{
		{name: "bad id", path: "/api/v1/appointments/x", body: "{}", status: http.StatusBadRequest},
		{name: "unknown field", path: "/api/v1/appointments/1", body: `{"foo":1}`, status: http.StatusBadRequest},
		{name: "invalid input", path: "/api/v1/appointments/1", body: "{}", svcErr: appointments.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/appointments/1", body: "{}", svcErr: appointments.ErrAppointmentNotFound, status: http.StatusNotFound},
		{name: "slot taken", path: "/api/v1/appointments/1", body: "{}", svcErr: appointments.ErrSlotNotAvailable, status: http.StatusConflict},
		{name: "bad transition", path: "/api/v1/appointments/1", body: "{}", svcErr: appointments.ErrInvalidStatusTransition, status: http.StatusConflict},
		{name: "internal", path: "/api/v1/appointments/1", body: "{}", svcErr: appointments.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.svcErr != nil {
				svc.On("Update", mock.Anything, int64(1), mock.Anything).Return(nil, tt.svcErr)
			}
			assert.Equal(t, tt.status, put(svc, tt.path, tt.body).Code)
		})
	}
}
