package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bizapi/internal/company"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, nameFilter string) ([]company.Company, error) {
	args := m.Called(ctx, nameFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, req company.Request) (*company.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, req company.Request) (*company.Company, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

func (m *MockRepository) Duplicate(ctx context.Context, id string) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}
