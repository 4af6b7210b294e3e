package update_config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/service/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.ConfigResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func put(svc *mockService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/calendar/config", strings.NewReader(body)))
	return rec
}

func TestHandle_UpdatesSchedule(t *testing.T) {
	body := `{
		"weeklySchedule": {
			"monday": {"isAvailable": true, "timeSlots": [{"start": "09:00", "end": "12:00"}]}
		},
		"slotStepMinutes": 30
	}`

	svc := &mockService{}
	svc.On("UpdateConfig", mock.Anything, mock.MatchedBy(func(req *models.UpdateConfigRequest) bool {
		if req.WeeklySchedule == nil || req.SlotStepMinutes == nil || *req.SlotStepMinutes != 30 {
			return false
		}
		monday := req.WeeklySchedule.Day(time.Monday)
		return monday.IsAvailable && len(monday.Intervals) == 1 && req.DefaultDurationMinutes == nil
	})).Return(&models.ConfigResponse{ID: 1, SlotStepMinutes: 30}, nil)

	rec := put(svc, body)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		svcErr error
		status int
	}{
		{name: "malformed", body: `{"slotStepMinutes":`, status: http.StatusBadRequest},
		{name: "invalid", body: `{"slotStepMinutes":7}`, svcErr: availability.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not found", body: `{}`, svcErr: availability.ErrConfigNotFound, status: http.StatusNotFound},
		{name: "internal", body: `{}`, svcErr: availability.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.svcErr != nil {
				svc.On("UpdateConfig", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}
			assert.Equal(t, tt.status, put(svc, tt.body).Code)
		})
	}
}
