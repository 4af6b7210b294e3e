package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.Date.String() == "2025-01-06" && req.DurationMinutes != nil && *req.DurationMinutes == 45
	})).Return(&getAvailableSlots.Response{
		Date:            mustRequest(t, "2025-01-06", "").Date,
		DurationMinutes: 45,
		Slots:           []domain.Slot{{Start: "09:00", End: "09:45"}},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/availability?date=2025-01-06&duration=45", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-01-06", body.Date)
	assert.Equal(t, []AvailableSlot{{Start: "09:00", End: "09:45"}}, body.Slots)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		ucErr  error
		status int
	}{
		{name: "missing date", query: "", status: http.StatusBadRequest},
		{name: "bad date", query: "date=06.01.2025", status: http.StatusBadRequest},
		{name: "bad duration", query: "date=2025-01-06&duration=abc", status: http.StatusBadRequest},
		{name: "invalid input", query: "date=2025-01-06&duration=1", ucErr: getAvailableSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "no config", query: "date=2025-01-06", ucErr: getAvailableSlots.ErrConfigNotFound, status: http.StatusNotFound},
		{name: "internal", query: "date=2025-01-06", ucErr: getAvailableSlots.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/availability?"+tt.query, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestToUseCaseRequest_Duration(t *testing.T) {
	req := mustRequest(t, "2025-01-06", "")
	assert.Nil(t, req.DurationMinutes)

	req = mustRequest(t, "2025-01-06", "0")
	require.NotNil(t, req.DurationMinutes)
	assert.Equal(t, 0, *req.DurationMinutes)
}

func TestHandle_ExplicitZeroDurationRejected(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.DurationMinutes != nil && *req.DurationMinutes == 0
	})).Return(nil, getAvailableSlots.ErrInvalidInput)

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/availability?date=2025-01-06&duration=0", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertExpectations(t)
}

func mustRequest(t *testing.T, date, duration string) *getAvailableSlots.Request {
	t.Helper()
	req, err := ToUseCaseRequest(date, duration)
	require.NoError(t, err)
	return req
}
