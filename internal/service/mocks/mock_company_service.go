package mocks

import (
	"context"

	"biztime/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) List(ctx context.Context) ([]model.CompanySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CompanySummary), args.Error(1)
}

func (m *MockCompanyService) Get(ctx context.Context, code string) (*model.CompanyDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyDetail), args.Error(1)
}

func (m *MockCompanyService) Create(ctx context.Context, in model.CompanyInput) (*model.Company, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyService) Update(ctx context.Context, code string, in model.CompanyInput) (*model.Company, error) {
	args := m.Called(ctx, code, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyService) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
