package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Service, error) {
	args := m.Called(ctx, includeInactive)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepo) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Service) *domain.Service); ok {
		return fn(ctx, service), args.Error(1)
	}
	if v := args.Get(0); v != nil {
		return v.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepo) Update(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Service) *domain.Service); ok {
		return fn(ctx, service), args.Error(1)
	}
	if v := args.Get(0); v != nil {
		return v.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepo) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type inlineTxManager struct{}

func (inlineTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
