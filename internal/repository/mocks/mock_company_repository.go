package mocks

import (
	"context"

	"biztime/internal/model"
	"biztime/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) List(ctx context.Context) (repository.Result[model.CompanySummary], error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.Result[model.CompanySummary]), args.Error(1)
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, code string) (repository.Result[model.Company], error) {
	args := m.Called(ctx, code)
	return args.Get(0).(repository.Result[model.Company]), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, in model.CompanyInput) (repository.Result[model.Company], error) {
	args := m.Called(ctx, in)
	return args.Get(0).(repository.Result[model.Company]), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, code string, in model.CompanyInput) (repository.Result[model.Company], error) {
	args := m.Called(ctx, code, in)
	return args.Get(0).(repository.Result[model.Company]), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, code string) (repository.Result[struct{}], error) {
	args := m.Called(ctx, code)
	return args.Get(0).(repository.Result[struct{}]), args.Error(1)
}
