package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bizapi/internal/worktype"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]worktype.WorkType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]worktype.WorkType), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, req worktype.CreateRequest) (*worktype.WorkType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worktype.WorkType), args.Error(1)
}
