package create_appointment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appt)
	switch v := args.Get(0).(type) {
	case func(context.Context, *domain.Appointment) *domain.Appointment:
		return v(ctx, appt), args.Error(1)
	case *domain.Appointment:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

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

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) GetActiveByName(ctx context.Context, name string) (*domain.Service, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) AppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

// inlineTxManager выполняет функцию без реальной транзакции; commitErr имитирует ошибку фиксации
type inlineTxManager struct {
	commitErr error
	calls     int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) ObserveAppointmentCreate(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
