package get_available_slots

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockConfigRepo struct{ mock.Mock }

func (m *mockConfigRepo) GetActive(ctx context.Context) (*domain.AvailabilityConfig, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.AvailabilityConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBlackoutRepo struct{ mock.Mock }

func (m *mockBlackoutRepo) GetAll(ctx context.Context) ([]domain.BlackoutDate, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.BlackoutDate), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
