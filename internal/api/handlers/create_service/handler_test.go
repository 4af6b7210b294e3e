package create_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.ServiceResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(svc *mockService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/services", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateService", mock.Anything, mock.MatchedBy(func(req *models.CreateServiceRequest) bool {
		return req.Name == "Haircut" && *req.PriceCents == 2500 && *req.DurationMinutes == 45
	})).Return(&models.ServiceResponse{ID: 4, Name: "Haircut", PriceCents: 2500, Currency: "EUR"}, nil)

	rec := post(svc, `{"name":"Haircut","priceCents":2500,"durationMinutes":45}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":4`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		svcErr error
		status int
	}{
		{name: "malformed", body: `{"name":`, status: http.StatusBadRequest},
		{name: "invalid", body: `{"name":"Haircut","priceCents":-1}`, svcErr: catalog.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "duplicate", body: `{"name":"Haircut","priceCents":1}`, svcErr: catalog.ErrServiceExists, status: http.StatusConflict},
		{name: "internal", body: `{"name":"Haircut","priceCents":1}`, svcErr: catalog.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.svcErr != nil {
				svc.On("CreateService", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}
			assert.Equal(t, tt.status, post(svc, tt.body).Code)
		})
	}
}
