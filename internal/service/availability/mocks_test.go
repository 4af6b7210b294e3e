package availability

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type mockConfigRepo struct{ mock.Mock }

func (m *mockConfigRepo) GetActive(ctx context.Context) (*domain.AvailabilityConfig, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.AvailabilityConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConfigRepo) Create(ctx context.Context, config *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	args := m.Called(ctx, config)
	if v := args.Get(0); v != nil {
		return v.(*domain.AvailabilityConfig), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConfigRepo) Update(ctx context.Context, config *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	args := m.Called(ctx, config)
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

func (m *mockBlackoutRepo) Create(ctx context.Context, blackout *domain.BlackoutDate) (*domain.BlackoutDate, error) {
	args := m.Called(ctx, blackout)
	if v := args.Get(0); v != nil {
		return v.(*domain.BlackoutDate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBlackoutRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type countingCache struct{ invalidations int }

func (c *countingCache) Invalidate(context.Context) { c.invalidations++ }

type inlineTxManager struct{}

func (inlineTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
