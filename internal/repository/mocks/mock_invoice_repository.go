package mocks

import (
	"context"

	"biztime/internal/model"
	"biztime/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) List(ctx context.Context) (repository.Result[model.InvoiceSummary], error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.Result[model.InvoiceSummary]), args.Error(1)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id int64) (repository.Result[model.InvoiceDetail], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Result[model.InvoiceDetail]), args.Error(1)
}

func (m *MockInvoiceRepository) ListIDsByCompany(ctx context.Context, code string) (repository.Result[int64], error) {
	args := m.Called(ctx, code)
	return args.Get(0).(repository.Result[int64]), args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, in model.InvoiceInput) (repository.Result[model.Invoice], error) {
	args := m.Called(ctx, in)
	return args.Get(0).(repository.Result[model.Invoice]), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateAmount(ctx context.Context, id int64, amt model.Amount) (repository.Result[model.Invoice], error) {
	args := m.Called(ctx, id, amt)
	return args.Get(0).(repository.Result[model.Invoice]), args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id int64) (repository.Result[struct{}], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Result[struct{}]), args.Error(1)
}
