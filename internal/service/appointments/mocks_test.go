package appointments

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Appointment), args.Error(1)
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

func (m *mockAppointmentRepo) Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appt)
	if v := args.Get(0); v != nil {
		return v.(*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return m.Called(ctx, id, status).Error(0)
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

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

// inlineTxManager выполняет функцию без транзакции и запоминает уровень изоляции
type inlineTxManager struct {
	serializable int
	plain        int
	commitErr    error
}

func (m *inlineTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.plain++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.serializable++
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
