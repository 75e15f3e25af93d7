package repository

import (
	"context"

	"biztime/internal/model"
)

// CompanyRepository defines data access for companies using SQL queries only.
// Every method returns the raw Result; deciding what a zero-row result means is
// left to the caller.
type CompanyRepository interface {
	// List returns every company projected to code and name.
	List(ctx context.Context) (Result[model.CompanySummary], error)

	// FindByCode returns the company with the given code, if any.
	FindByCode(ctx context.Context, code string) (Result[model.Company], error)

	// Create inserts a company and returns the stored row.
	Create(ctx context.Context, in model.CompanyInput) (Result[model.Company], error)

	// Update sets name and description on the company with the given code and
	// returns the updated row, if one matched.
	Update(ctx context.Context, code string, in model.CompanyInput) (Result[model.Company], error)

	// Delete removes the company with the given code. Count is the number of rows deleted.
	Delete(ctx context.Context, code string) (Result[struct{}], error)
}
