package service

import (
	"context"

	"biztime/internal/model"
	"biztime/internal/repository"
	"biztime/internal/validation"
)

const invoiceLabel = "Invoice"

// InvoiceService defines the use cases for invoices.
type InvoiceService interface {
	List(ctx context.Context) ([]model.InvoiceSummary, error)

	// Get returns the invoice flattened with its company's code, name and description.
	Get(ctx context.Context, id int64) (*model.InvoiceDetail, error)

	// Create stores a new unpaid invoice. An unknown comp_code surfaces as a storage error.
	Create(ctx context.Context, in model.InvoiceInput) (*model.Invoice, error)

	// Update changes the amount only.
	Update(ctx context.Context, id int64, amt model.Amount) (*model.Invoice, error)

	Delete(ctx context.Context, id int64) error
}

type invoiceService struct {
	repo repository.InvoiceRepository
}

// NewInvoiceService constructs a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

func (s *invoiceService) List(ctx context.Context) ([]model.InvoiceSummary, error) {
	res, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

func (s *invoiceService) Get(ctx context.Context, id int64) (*model.InvoiceDetail, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.Exists(res, invoiceLabel); err != nil {
		return nil, err
	}
	inv := res.First()
	return &inv, nil
}

func (s *invoiceService) Create(ctx context.Context, in model.InvoiceInput) (*model.Invoice, error) {
	res, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	inv := res.First()
	return &inv, nil
}

func (s *invoiceService) Update(ctx context.Context, id int64, amt model.Amount) (*model.Invoice, error) {
	res, err := s.repo.UpdateAmount(ctx, id, amt)
	if err != nil {
		return nil, err
	}
	if err := validation.Exists(res, invoiceLabel); err != nil {
		return nil, err
	}
	inv := res.First()
	return &inv, nil
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	return validation.Exists(res, invoiceLabel)
}
