package cancel_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Cancel(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, int64(3)).Return(&models.AppointmentResponse{ID: 3, Status: "cancelled"}, nil)

	rec := serve(svc, "/api/v1/appointments/3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cancelled", body.Status)
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, int64(1)).Return(nil, appointments.ErrAppointmentNotFound)
	svc.On("Cancel", mock.Anything, int64(2)).Return(nil, appointments.ErrCannotCancel)
	svc.On("Cancel", mock.Anything, int64(3)).Return(nil, appointments.ErrInternal)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/appointments/x").Code)
	assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/appointments/1").Code)
	assert.Equal(t, http.StatusConflict, serve(svc, "/api/v1/appointments/2").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(svc, "/api/v1/appointments/3").Code)
}
