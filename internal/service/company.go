package service

import (
	"context"

	"biztime/internal/model"
	"biztime/internal/repository"
	"biztime/internal/validation"
)

const companyLabel = "Company"

// CompanyService defines the use cases for companies. Every lookup that targets a
// single company fails with apperr.NotFound("Company") when no row matches.
type CompanyService interface {
	// List returns every company as code and name.
	List(ctx context.Context) ([]model.CompanySummary, error)

	// Get returns the company with the ids of its invoices attached.
	Get(ctx context.Context, code string) (*model.CompanyDetail, error)

	// Create stores a new company. Duplicate codes or names surface as storage errors.
	Create(ctx context.Context, in model.CompanyInput) (*model.Company, error)

	// Update replaces name and description. A nil description clears the column.
	Update(ctx context.Context, code string, in model.CompanyInput) (*model.Company, error)

	// Delete removes the company and, through the schema, its invoices.
	Delete(ctx context.Context, code string) error
}

type companyService struct {
	companies repository.CompanyRepository
	invoices  repository.InvoiceRepository
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(companies repository.CompanyRepository, invoices repository.InvoiceRepository) CompanyService {
	return &companyService{companies: companies, invoices: invoices}
}

func (s *companyService) List(ctx context.Context) ([]model.CompanySummary, error) {
	res, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

func (s *companyService) Get(ctx context.Context, code string) (*model.CompanyDetail, error) {
	res, err := s.companies.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := validation.Exists(res, companyLabel); err != nil {
		return nil, err
	}

	ids, err := s.invoices.ListIDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}

	detail := &model.CompanyDetail{Company: res.First(), Invoices: ids.Rows}
	if detail.Invoices == nil {
		detail.Invoices = []int64{}
	}
	return detail, nil
}

func (s *companyService) Create(ctx context.Context, in model.CompanyInput) (*model.Company, error) {
	res, err := s.companies.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	c := res.First()
	return &c, nil
}

func (s *companyService) Update(ctx context.Context, code string, in model.CompanyInput) (*model.Company, error) {
	res, err := s.companies.Update(ctx, code, in)
	if err != nil {
		return nil, err
	}
	if err := validation.Exists(res, companyLabel); err != nil {
		return nil, err
	}
	c := res.First()
	return &c, nil
}

func (s *companyService) Delete(ctx context.Context, code string) error {
	res, err := s.companies.Delete(ctx, code)
	if err != nil {
		return err
	}
	return validation.Exists(res, companyLabel)
}
